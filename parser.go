// parser.go: token stream -> AST.
//
// Hand-written, statement-driven at the top level and precedence-climbing
// for expressions, following spec.md §4.4's 14-level table (implemented as
// nested per-level functions rather than a single generic Pratt loop,
// since two levels — the conditional chain and the filter operator — need
// to re-enter the full expression grammar on their right-hand side, which
// original_source/src/parser.cpp does via direct recursion into
// parseCondChain). Line continuation is handled at each call site right
// after consuming an "expression-open" token (spec.md §4.4), rather than
// as a lexer-wide policy, which is equivalent and easier to audit locally.
package rill

import "fmt"

// ParseError is a diagnosed parse failure. Line/Col are 1-based.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Parser turns a token slice into a Program, collecting diagnostics rather
// than aborting on the first malformed statement.
type Parser struct {
	toks []Token
	pos  int
	errs []*ParseError
}

// NewParser constructs a Parser over a token slice, as produced by Lexer.Scan.
func NewParser(toks []Token) *Parser {
	return &Parser{toks: toks}
}

// Parse consumes the whole token stream and returns the resulting Program
// plus any diagnostics collected along the way.
func (p *Parser) Parse() (*Program, []*ParseError) {
	prog := p.parseProgram()
	return prog, p.errs
}

/* ---------------------------------------------------------------------
   token stream primitives
   --------------------------------------------------------------------- */

func (p *Parser) cur() Token           { return p.toks[p.pos] }
func (p *Parser) at(t TokenType) bool  { return p.cur().Type == t }

func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) match(t TokenType) bool {
	if p.at(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(t TokenType, what string) Token {
	if p.at(t) {
		return p.advance()
	}
	tok := p.cur()
	p.errorf("expected %s, found %q", what, tok.Lexeme)
	return tok
}

func (p *Parser) errorf(format string, args ...any) {
	tok := p.cur()
	p.errs = append(p.errs, &ParseError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)})
}

func (p *Parser) pos_() Position { return Position{Line: p.cur().Line, Col: p.cur().Col} }

// skipNewlines silently consumes a run of NEWLINE tokens — used right after
// consuming a token whose kind is "expression-open" (spec.md §4.4).
func (p *Parser) skipNewlines() {
	for p.at(NEWLINE) {
		p.advance()
	}
}

func (p *Parser) mark() int      { return p.pos }
func (p *Parser) reset(mark int) { p.pos = mark }

/* ---------------------------------------------------------------------
   program / statements
   --------------------------------------------------------------------- */

func (p *Parser) parseProgram() *Program {
	pos := p.pos_()
	var stmts []Node
	for !p.at(EOF) {
		for p.at(NEWLINE) {
			p.advance()
		}
		if p.at(EOF) {
			break
		}
		stmts = append(stmts, p.parseStatement())
		if p.at(NEWLINE) {
			p.advance()
		} else if !p.at(EOF) {
			p.errorf("expected end of statement, found %q", p.cur().Lexeme)
			p.advance()
		}
	}
	return &Program{baseNode: baseNode{pos}, Stmts: stmts}
}

func (p *Parser) parseBlockStatements(terminators ...TokenType) []Node {
	var stmts []Node
	for {
		for p.at(NEWLINE) {
			p.advance()
		}
		if p.at(EOF) {
			break
		}
		done := false
		for _, t := range terminators {
			if p.at(t) {
				done = true
				break
			}
		}
		if done {
			break
		}
		stmts = append(stmts, p.parseStatement())
		if p.at(NEWLINE) {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseStatement() Node {
	pos := p.pos_()
	switch p.cur().Type {
	case KW_ECHO, KW_ERR:
		p.advance()
		if p.at(NEWLINE) || p.at(EOF) {
			return &Echo{baseNode: baseNode{pos}}
		}
		return &Echo{baseNode: baseNode{pos}, Expr: p.parseCommaList()}
	case KW_WHILE:
		return p.parseWhile()
	case KW_FOR:
		return p.parseForIn()
	case KW_BREAK, KW_CONTINUE:
		p.errorf("%q is reserved but not supported by this interpreter core", p.cur().Lexeme)
		p.advance()
		return &ExprStmt{baseNode: baseNode{pos}, Expr: &Literal{baseNode: baseNode{pos}, Kind: LitInt, Text: "0"}}
	case KW_DEF:
		mark := p.mark()
		p.advance() // def
		if p.at(IDENT) {
			name := p.advance().Lexeme
			if p.at(LPAREN) {
				return p.parseFunctionDef(pos, name)
			}
		}
		p.reset(mark)
		return &ExprStmt{baseNode: baseNode{pos}, Expr: p.parseCommaList()}
	case KW_FIXED, KW_DYNAMIC, KW_INT, KW_DOUBLE, KW_STRING, KW_ZERO, LT:
		return p.parseDeclaration(pos)
	case IDENT:
		if stmt, ok := p.tryParseIdentStatement(pos); ok {
			return stmt
		}
		return &ExprStmt{baseNode: baseNode{pos}, Expr: p.parseCommaList()}
	default:
		return &ExprStmt{baseNode: baseNode{pos}, Expr: p.parseCommaList()}
	}
}

// tryParseIdentStatement handles the two statement forms that start with a
// bare identifier and need lookahead to disambiguate from a plain
// expression statement: `name = expr` and `name[index] = expr`.
func (p *Parser) tryParseIdentStatement(pos Position) (Node, bool) {
	mark := p.mark()
	errMark := len(p.errs)
	name := p.advance().Lexeme
	if p.at(ASSIGN) {
		p.advance()
		p.skipNewlines()
		val := p.parseCommaList()
		return &Assign{baseNode: baseNode{pos}, Name: name, Value: val}, true
	}
	if p.at(LBRACKET) {
		p.advance()
		p.skipNewlines()
		idx := p.parseCondChainOrLower()
		p.skipNewlines()
		p.expect(RBRACKET, "']'")
		if p.at(ASSIGN) {
			p.advance()
			p.skipNewlines()
			val := p.parseCommaList()
			return &ArrayAssign{baseNode: baseNode{pos}, Name: name, Index: idx, Value: val}, true
		}
	}
	// Drop diagnostics from the abandoned lookahead; the statement is
	// re-parsed as an expression and reports its own errors.
	p.errs = p.errs[:errMark]
	p.reset(mark)
	return nil, false
}

/* ---------------------------------------------------------------------
   declarations
   --------------------------------------------------------------------- */

func (p *Parser) parseDeclaration(pos Position) Node {
	fixed, dynamic := false, false
	for {
		if p.at(KW_FIXED) {
			if fixed {
				p.errorf("duplicate 'fixed' modifier")
			}
			fixed = true
			p.advance()
			continue
		}
		if p.at(KW_DYNAMIC) {
			if dynamic {
				p.errorf("duplicate 'dynamic' modifier")
			}
			dynamic = true
			p.advance()
			continue
		}
		break
	}
	if fixed && dynamic {
		p.errorf("'fixed' and 'dynamic' are mutually exclusive")
	}

	declType, fnTypes := p.parseTypeSpec()

	name := p.expect(IDENT, "identifier").Lexeme

	if p.match(LBRACKET) {
		// Array declaration: either a static size `type name[N]` or a
		// dynamic/initializer form `name[] = init`.
		if p.at(RBRACKET) {
			p.advance()
			p.expect(ASSIGN, "'='")
			p.skipNewlines()
			init := p.parseArrayInitList()
			return &ArrayDecl{baseNode: baseNode{pos}, Name: name, Type: declType, Fixed: fixed, Dynamic: dynamic, Init: init}
		}
		size := p.parseCondChainOrLower()
		p.expect(RBRACKET, "']'")
		var init Node
		if p.match(ASSIGN) {
			p.skipNewlines()
			init = p.parseArrayInitList()
		}
		return &ArrayDecl{baseNode: baseNode{pos}, Name: name, Type: declType, Fixed: fixed, Dynamic: dynamic, Size: size, Init: init}
	}

	if declType == TypeFunc {
		// `<(paramTypes)> name = lambda` — always fixed.
		p.expect(ASSIGN, "'='")
		p.skipNewlines()
		init := p.parseCondChainOrLower()
		return &VarDecl{baseNode: baseNode{pos}, Name: name, Type: declType, FnTypes: fnTypes, Fixed: true, Init: init}
	}

	var init Node
	if p.match(ASSIGN) {
		p.skipNewlines()
		init = p.parseCommaList()
	}
	return &VarDecl{baseNode: baseNode{pos}, Name: name, Type: declType, Fixed: fixed, Dynamic: dynamic, Init: init}
}

func (p *Parser) parseArrayInitList() *ArrayInit {
	pos := p.pos_()
	elems := []Node{p.parseCondChainOrLower()}
	for p.match(COMMA) {
		p.skipNewlines()
		elems = append(elems, p.parseCondChainOrLower())
	}
	return &ArrayInit{baseNode: baseNode{pos}, Elems: elems}
}

func (p *Parser) parseTypeSpec() (DeclType, []DeclType) {
	switch p.cur().Type {
	case KW_INT:
		p.advance()
		return TypeInt, nil
	case KW_DOUBLE:
		p.advance()
		return TypeDouble, nil
	case KW_STRING:
		p.advance()
		return TypeString, nil
	case KW_ZERO:
		p.advance()
		return TypeZero, nil
	case LT:
		p.advance()
		p.expect(LPAREN, "'('")
		var fnTypes []DeclType
		if !p.at(RPAREN) {
			t, _ := p.parseTypeSpec()
			fnTypes = append(fnTypes, t)
			for p.match(COMMA) {
				t, _ := p.parseTypeSpec()
				fnTypes = append(fnTypes, t)
			}
		}
		p.expect(RPAREN, "')'")
		p.expect(GT, "'>'")
		return TypeFunc, fnTypes
	default:
		p.errorf("expected a type, found %q", p.cur().Lexeme)
		return TypeInt, nil
	}
}

/* ---------------------------------------------------------------------
   function definitions and lambdas
   --------------------------------------------------------------------- */

func (p *Parser) parseParamList() []*Param {
	var params []*Param
	if p.at(RPAREN) {
		return params
	}
	params = append(params, p.parseParam())
	for p.match(COMMA) {
		params = append(params, p.parseParam())
	}
	return params
}

func (p *Parser) parseParam() *Param {
	pos := p.pos_()
	name := p.expect(IDENT, "parameter name").Lexeme
	p.expect(COLON, "':'")
	t, fnTypes := p.parseTypeSpec()
	return &Param{baseNode: baseNode{pos}, Name: name, Type: t, FnTypes: fnTypes}
}

func (p *Parser) parseFunctionDef(pos Position, name string) Node {
	p.expect(LPAREN, "'('")
	params := p.parseParamList()
	p.expect(RPAREN, "')'")
	p.expect(ARROW, "'->'")
	retType, retFn := p.parseTypeSpec()
	p.expect(DCOLON, "'::'")
	p.skipNewlines()
	stmts := p.parseBlockStatements(KW_END)
	p.expect(KW_END, "'end'")
	return &FunctionDef{baseNode: baseNode{pos}, Name: name, Params: params, ReturnType: retType, RetFnTypes: retFn, Body: &Body{Stmts: stmts}}
}

// parseLambda handles `def(params) -> T expr` and `def(params) -> T :: body end`.
// The leading KW_DEF has already been consumed by the caller.
func (p *Parser) parseLambda(pos Position) Node {
	p.expect(LPAREN, "'('")
	params := p.parseParamList()
	p.expect(RPAREN, "')'")
	p.expect(ARROW, "'->'")
	retType, retFn := p.parseTypeSpec()
	if p.match(DCOLON) {
		p.skipNewlines()
		stmts := p.parseBlockStatements(KW_END)
		p.expect(KW_END, "'end'")
		return &Lambda{baseNode: baseNode{pos}, Params: params, ReturnType: retType, RetFnTypes: retFn, Body: &Body{Stmts: stmts}}
	}
	body := p.parseCondChainOrLower()
	return &Lambda{baseNode: baseNode{pos}, Params: params, ReturnType: retType, RetFnTypes: retFn, Body: body}
}

/* ---------------------------------------------------------------------
   control flow
   --------------------------------------------------------------------- */

func (p *Parser) parseWhile() Node {
	pos := p.pos_()
	p.advance() // while
	p.expect(LPAREN, "'('")
	cond := p.parseCommaList()
	p.expect(RPAREN, "')'")
	returnVar := p.parseOptionalReturnVar()
	body := p.parseStmtOrBlock()
	return &While{baseNode: baseNode{pos}, Cond: cond, Body: body, ReturnVar: returnVar}
}

func (p *Parser) parseForIn() Node {
	pos := p.pos_()
	p.advance() // for
	iter := p.expect(IDENT, "loop variable").Lexeme
	p.expect(KW_IN, "'in'")
	coll := p.parseCondChainOrLower()
	returnVar := p.parseOptionalReturnVar()
	body := p.parseStmtOrBlock()
	return &ForIn{baseNode: baseNode{pos}, IterVar: iter, Coll: coll, Body: body, ReturnVar: returnVar}
}

func (p *Parser) parseOptionalReturnVar() string {
	if p.match(ARROW) {
		return p.expect(IDENT, "return variable").Lexeme
	}
	return ""
}

// parseStmtOrBlock implements the shared while/for-in body grammar: a `::`
// ... `end` block, or a single inline statement.
func (p *Parser) parseStmtOrBlock() Node {
	pos := p.pos_()
	if p.match(DCOLON) {
		p.skipNewlines()
		stmts := p.parseBlockStatements(KW_END)
		p.expect(KW_END, "'end'")
		return &Body{baseNode: baseNode{pos}, Stmts: stmts}
	}
	return p.parseStatement()
}

func (p *Parser) parseIfExpr() Node {
	pos := p.pos_()
	p.advance() // if
	var branches []IfBranch
	cond := p.parseCondChainOrLower()
	p.expect(DCOLON, "'::'")
	multiline := p.at(NEWLINE)
	branches = append(branches, IfBranch{Cond: cond, Body: p.parseIfBranchBody(multiline)})

	for p.at(KW_ELIF) {
		p.advance()
		c := p.parseCondChainOrLower()
		p.expect(DCOLON, "'::'")
		ml := p.at(NEWLINE)
		branches = append(branches, IfBranch{Cond: c, Body: p.parseIfBranchBody(ml)})
	}

	hasElse := false
	if p.at(KW_ELSE) {
		p.advance()
		p.expect(DCOLON, "'::'")
		ml := p.at(NEWLINE)
		branches = append(branches, IfBranch{Cond: nil, Body: p.parseIfBranchBody(ml)})
		hasElse = true
	}

	if multiline {
		p.expect(KW_END, "'end'")
	}
	return &IfExpr{baseNode: baseNode{pos}, Branches: branches, HasElse: hasElse, Multiline: multiline}
}

func (p *Parser) parseIfBranchBody(multiline bool) Node {
	if multiline {
		p.advance() // the newline that decided this was a block
		stmts := p.parseBlockStatements(KW_ELIF, KW_ELSE, KW_END)
		return &Body{Stmts: stmts}
	}
	return p.parseCondChainOrLower()
}

/* ---------------------------------------------------------------------
   expressions: layered precedence climbing (spec.md §4.4 table)
   --------------------------------------------------------------------- */

// parseCommaList implements precedence level 0 (comma list). It is used
// wherever a full expression is allowed to contain a top-level comma:
// echo's operand, an assignment's right-hand side, and bare expression
// statements.
func (p *Parser) parseCommaList() Node {
	pos := p.pos_()
	first := p.parseCondChainOrLower()
	if !p.at(COMMA) {
		return first
	}
	elems := []Node{first}
	for p.match(COMMA) {
		p.skipNewlines()
		elems = append(elems, p.parseCondChainOrLower())
	}
	return &CommaList{baseNode: baseNode{pos}, Elems: elems}
}

// parseCondChainOrLower parses the conditional-chain construct
// (spec.md §4.4 "Conditional chain") when a bare '?' follows an
// elvis-level expression, otherwise falls through to that expression.
func (p *Parser) parseCondChainOrLower() Node {
	pos := p.pos_()
	first := p.parseElvisLevel()
	if !p.at(QUESTION) {
		return first
	}
	p.advance()
	p.skipNewlines()
	firstExpr := p.parseElvisLevel()
	arms := []*SimpleCond{{Cond: first, Expr: firstExpr}}
	for p.match(DQMARK) {
		p.skipNewlines()
		c := p.parseElvisLevel()
		p.expect(QUESTION, "'?'")
		p.skipNewlines()
		e := p.parseElvisLevel()
		arms = append(arms, &SimpleCond{Cond: c, Expr: e})
	}
	var fallback Node
	hasFallback := false
	if p.match(COLON) {
		p.skipNewlines()
		fallback = p.parseCondChainOrLower()
		hasFallback = true
	}
	return &CondChain{baseNode: baseNode{pos}, Arms: arms, Fallback: fallback, HasFallback: hasFallback, Incomplete: !hasFallback}
}

func (p *Parser) parseElvisLevel() Node {
	pos := p.pos_()
	left := p.parseOrLevel()
	for p.match(ELVIS) {
		p.skipNewlines()
		right := p.parseOrLevel()
		left = &Elvis{baseNode: baseNode{pos}, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseOrLevel() Node {
	pos := p.pos_()
	left := p.parseAndLevel()
	for p.match(KW_OR) {
		p.skipNewlines()
		right := p.parseAndLevel()
		left = &LogicalOp{baseNode: baseNode{pos}, Op: "or", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAndLevel() Node {
	pos := p.pos_()
	left := p.parseBorLevel()
	for p.match(KW_AND) {
		p.skipNewlines()
		right := p.parseBorLevel()
		left = &LogicalOp{baseNode: baseNode{pos}, Op: "and", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBorLevel() Node {
	pos := p.pos_()
	left := p.parseBxorLevel()
	for p.match(BOR) {
		p.skipNewlines()
		right := p.parseBxorLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: "|", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBxorLevel() Node {
	pos := p.pos_()
	left := p.parseBandLevel()
	for p.match(BXOR) {
		p.skipNewlines()
		right := p.parseBandLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: "^", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBandLevel() Node {
	pos := p.pos_()
	left := p.parseEqLevel()
	for p.match(BAND) {
		p.skipNewlines()
		right := p.parseEqLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: "&", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEqLevel() Node {
	pos := p.pos_()
	left := p.parseCmpLevel()
	for p.at(EQ) || p.at(NEQ) {
		op := p.advance()
		p.skipNewlines()
		right := p.parseCmpLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseCmpLevel() Node {
	pos := p.pos_()
	left := p.parseShiftLevel()
	for p.at(LT) || p.at(LE) || p.at(GT) || p.at(GE) {
		op := p.advance()
		p.skipNewlines()
		right := p.parseShiftLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseShiftLevel() Node {
	pos := p.pos_()
	left := p.parseConcatLevel()
	for p.at(SHL) || p.at(SHR) {
		op := p.advance()
		p.skipNewlines()
		right := p.parseConcatLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

// parseConcatLevel handles `$`, including the slice-shorthand desugaring
// `e $[range-or-index]` -> `e $ e[range-or-index]` (spec.md §4.4).
func (p *Parser) parseConcatLevel() Node {
	pos := p.pos_()
	left := p.parseAddLevel()
	for p.match(CONCAT) {
		p.skipNewlines()
		if p.at(LBRACKET) {
			p.advance()
			p.skipNewlines()
			idx := p.parseIndexOrRange()
			p.skipNewlines()
			p.expect(RBRACKET, "']'")
			access := &ArrayAccess{baseNode: baseNode{pos}, Target: left, Index: idx}
			left = &BinaryOp{baseNode: baseNode{pos}, Op: "$", Left: left, Right: access}
			continue
		}
		right := p.parseAddLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: "$", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAddLevel() Node {
	pos := p.pos_()
	left := p.parseMulLevel()
	for p.at(PLUS) || p.at(MINUS) {
		op := p.advance()
		p.skipNewlines()
		right := p.parseMulLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMulLevel() Node {
	pos := p.pos_()
	left := p.parsePowLevel()
	for p.at(STAR) || p.at(SLASH) || p.at(PERCENT) {
		op := p.advance()
		p.skipNewlines()
		right := p.parsePowLevel()
		left = &BinaryOp{baseNode: baseNode{pos}, Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

// parsePowLevel implements right-associative `**`.
func (p *Parser) parsePowLevel() Node {
	pos := p.pos_()
	left := p.parseFilterLevel()
	if p.match(POW) {
		p.skipNewlines()
		right := p.parsePowLevel()
		return &BinaryOp{baseNode: baseNode{pos}, Op: "**", Left: left, Right: right}
	}
	return left
}

// parseFilterLevel implements `=>`, the highest-precedence binary
// operator. Its right-hand side re-enters the full conditional-chain
// grammar so a filter predicate can itself be a rich expression.
func (p *Parser) parseFilterLevel() Node {
	pos := p.pos_()
	left := p.parseUnary()
	for p.match(FATARR) {
		p.skipNewlines()
		right := p.parseCondChainOrLower()
		left = &Filter{baseNode: baseNode{pos}, Array: left, Cond: right}
	}
	return left
}

func (p *Parser) parseUnary() Node {
	pos := p.pos_()
	if p.at(MINUS) || p.at(BANG) || p.at(BNOT) || p.at(KW_NOT) {
		op := p.advance()
		lexeme := op.Lexeme
		if op.Type == KW_NOT {
			lexeme = "!"
		}
		operand := p.parseUnary()
		return &UnaryOp{baseNode: baseNode{pos}, Op: lexeme, Operand: operand}
	}
	return p.parsePostfix()
}

/* ---------------------------------------------------------------------
   postfix (call, index) and primary
   --------------------------------------------------------------------- */

func (p *Parser) parsePostfix() Node {
	pos := p.pos_()
	left := p.parsePrimary()
	for {
		switch {
		case p.at(LPAREN):
			p.advance()
			p.skipNewlines()
			args := p.parseArgList()
			p.expect(RPAREN, "')'")
			if id, ok := left.(*Identifier); ok {
				left = &Call{baseNode: baseNode{pos}, Name: id.Name, Args: args}
			} else {
				left = &CallExpr{baseNode: baseNode{pos}, Callee: left, Args: args}
			}
		case p.at(LBRACKET):
			p.advance()
			p.skipNewlines()
			idx := p.parseIndexOrRange()
			p.skipNewlines()
			p.expect(RBRACKET, "']'")
			left = &ArrayAccess{baseNode: baseNode{pos}, Target: left, Index: idx}
		default:
			return left
		}
	}
}

func (p *Parser) parseArgList() []Node {
	var args []Node
	if p.at(RPAREN) {
		return args
	}
	args = append(args, p.parseCondChainOrLower())
	for p.match(COMMA) {
		p.skipNewlines()
		args = append(args, p.parseCondChainOrLower())
	}
	return args
}

// parseIndexOrRange parses the contents of `[...]` after an already-
// consumed LBRACKET: either a RangeExpr (`a..b`, `a..`, `..b`, `..`) or a
// plain index expression.
func (p *Parser) parseIndexOrRange() Node {
	pos := p.pos_()
	if p.at(DOTDOT) {
		p.advance()
		p.skipNewlines()
		if p.at(RBRACKET) {
			return &RangeExpr{baseNode: baseNode{pos}}
		}
		end := p.parseCondChainOrLower()
		return &RangeExpr{baseNode: baseNode{pos}, End: end, HasEnd: true}
	}
	first := p.parseCondChainOrLower()
	if p.match(DOTDOT) {
		p.skipNewlines()
		if p.at(RBRACKET) {
			return &RangeExpr{baseNode: baseNode{pos}, Start: first, HasStart: true}
		}
		end := p.parseCondChainOrLower()
		return &RangeExpr{baseNode: baseNode{pos}, Start: first, HasStart: true, End: end, HasEnd: true}
	}
	return first
}

func (p *Parser) parsePrimary() Node {
	pos := p.pos_()
	tok := p.cur()
	switch tok.Type {
	case INT:
		p.advance()
		return &Literal{baseNode: baseNode{pos}, Kind: LitInt, Text: tok.Lexeme}
	case DOUBLE:
		p.advance()
		return &Literal{baseNode: baseNode{pos}, Kind: LitDouble, Text: tok.Lexeme}
	case STRING:
		p.advance()
		return &Literal{baseNode: baseNode{pos}, Kind: LitString, Text: tok.Lexeme}
	case IDENT:
		p.advance()
		return &Identifier{baseNode: baseNode{pos}, Name: tok.Lexeme}
	case KW_IF:
		return p.parseIfExpr()
	case KW_DEF:
		p.advance()
		return p.parseLambda(pos)
	case LPAREN:
		p.advance()
		p.skipNewlines()
		inner := p.parseCommaList()
		p.skipNewlines()
		p.expect(RPAREN, "')'")
		return inner
	default:
		p.errorf("unexpected token %q", tok.Lexeme)
		if !p.at(EOF) {
			p.advance()
		}
		return &Literal{baseNode: baseNode{pos}, Kind: LitInt, Text: "0"}
	}
}
