package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Expression pipeline errors.
	ExprInfo            Code = 1000
	ExprNullOperand     Code = 1001
	ExprTypeMismatch    Code = 1002
	ExprBadOperator     Code = 1003
	ExprBadConstructor  Code = 1004
	ExprBadIndex        Code = 1005
	ExprBadSwizzle      Code = 1006
	ExprNotAssignable   Code = 1007
	ExprBranchMismatch  Code = 1008
	ExprArgCount        Code = 1009
	ExprNotCallable     Code = 1010
	ExprUnknownFunction Code = 1011

	// Statement / declaration errors.
	DeclInfo           Code = 2000
	DeclRedeclared     Code = 2001
	DeclBadInitializer Code = 2002
	DeclNotDeclared    Code = 2003
	DeclBadReturn      Code = 2004

	// Session / configuration errors.
	SessInfo        Code = 3000
	SessBadSettings Code = 3001
	SessCacheError  Code = 3002
)

// String returns the stable textual form of the code, e.g. "PRI1002".
func (c Code) String() string {
	return fmt.Sprintf("PRI%04d", uint16(c))
}
