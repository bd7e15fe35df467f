package lib

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypeIdentifier
	TokenTypeIf
	TokenTypeElse
	TokenTypePlus
	TokenTypeMinus
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypeLParen
	TokenTypeRParen
	TokenTypeLCurly
	TokenTypeRCurly
	TokenTypeAssign
	TokenTypeEqual
	TokenTypeLess
	TokenTypeLessOrEqual
	TokenTypeGreater
	TokenTypeGreaterOrEqual
	TokenTypeNot
	TokenTypeAnd
	TokenTypeOr
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeNumber:         "Number",
	TokenTypeIdentifier:     "Identifier",
	TokenTypeIf:             "If",
	TokenTypeElse:           "Else",
	TokenTypePlus:           "Plus",
	TokenTypeMinus:          "Minus",
	TokenTypeAsterisk:       "Asterisk",
	TokenTypeSlash:          "Slash",
	TokenTypeLParen:         "LParen",
	TokenTypeRParen:         "RParen",
	TokenTypeLCurly:         "LCurly",
	TokenTypeRCurly:         "RCurly",
	TokenTypeAssign:         "Assign",
	TokenTypeEqual:          "Equal",
	TokenTypeLess:           "Less",
	TokenTypeLessOrEqual:    "LessOrEqual",
	TokenTypeGreater:        "Greater",
	TokenTypeGreaterOrEqual: "GreaterOrEqual",
	TokenTypeNot:            "Not",
	TokenTypeAnd:            "And",
	TokenTypeOr:             "Or",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return "Unknown"
	}
	return name
}

// Token is one lexical unit. Number is only meaningful for TokenTypeNumber
// and Name for TokenTypeIdentifier; every other type is a bare marker.
type Token struct {
	Type   TokenType
	Number int
	Name   string
}
