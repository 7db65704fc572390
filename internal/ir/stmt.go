package ir

// StmtKind enumerates IR statement kinds.
type StmtKind uint8

const (
	// StmtExpr wraps an expression evaluated for its side effects.
	StmtExpr StmtKind = iota
	// StmtVarDecl declares (and optionally initializes) a local variable.
	StmtVarDecl
	// StmtBlock groups statements in a nested scope.
	StmtBlock
	// StmtIf is a conditional with optional else branch.
	StmtIf
	// StmtFor is a C-style for loop.
	StmtFor
	// StmtWhile is a while loop.
	StmtWhile
	// StmtDo is a do/while loop.
	StmtDo
	// StmtReturn returns from the current function.
	StmtReturn
	// StmtDiscard abandons the current fragment.
	StmtDiscard
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "Expr"
	case StmtVarDecl:
		return "VarDecl"
	case StmtBlock:
		return "Block"
	case StmtIf:
		return "If"
	case StmtFor:
		return "For"
	case StmtWhile:
		return "While"
	case StmtDo:
		return "Do"
	case StmtReturn:
		return "Return"
	case StmtDiscard:
		return "Discard"
	default:
		return "Unknown"
	}
}

// Stmt represents an IR statement.
type Stmt struct {
	Kind StmtKind
	Data StmtData
}

// StmtData is the interface for statement-specific data.
type StmtData interface {
	stmtData()
}

// ExprStmtData holds data for StmtExpr.
type ExprStmtData struct {
	Expr *Expr
}

func (ExprStmtData) stmtData() {}

// VarDeclData holds data for StmtVarDecl.
type VarDeclData struct {
	Decl *VarDecl
	// Init is nil for uninitialized declarations.
	Init *Expr
}

func (VarDeclData) stmtData() {}

// BlockData holds data for StmtBlock.
type BlockData struct {
	Stmts []*Stmt
}

func (BlockData) stmtData() {}

// IfData holds data for StmtIf. IfFalse may be nil.
type IfData struct {
	Test    *Expr
	IfTrue  *Stmt
	IfFalse *Stmt
}

func (IfData) stmtData() {}

// ForData holds data for StmtFor. Init, Test and Next may each be nil.
type ForData struct {
	Init *Stmt
	Test *Expr
	Next *Expr
	Body *Stmt
}

func (ForData) stmtData() {}

// WhileData holds data for StmtWhile.
type WhileData struct {
	Test *Expr
	Body *Stmt
}

func (WhileData) stmtData() {}

// DoData holds data for StmtDo.
type DoData struct {
	Body *Stmt
	Test *Expr
}

func (DoData) stmtData() {}

// ReturnData holds data for StmtReturn. Expr is nil for bare returns.
type ReturnData struct {
	Expr *Expr
}

func (ReturnData) stmtData() {}

// DiscardData holds data for StmtDiscard.
type DiscardData struct{}

func (DiscardData) stmtData() {}
