package symbol

//go:generate stringer -type=JSType -trimprefix=JS

// JSType classifies script symbols.
type JSType int

const (
	JSUnknown JSType = iota
	JSIdentifier
	JSKeyword
	JSTransition
	JSIntegerLiteral
	JSBinaryLiteral
	JSOctalLiteral
	JSHexLiteral
	JSRealLiteral
	JSStringLiteral
	JSRegularExpressionLiteral
	JSNewLine
	JSWhiteSpace
	JSComment

	JSDot                                 // .
	JSAssignment                          // =
	JSLeftBracket                         // [
	JSRightBracket                        // ]
	JSLeftParen                           // (
	JSRightParen                          // )
	JSLeftBrace                           // {
	JSRightBrace                          // }
	JSPlus                                // +
	JSMinus                               // -
	JSModulo                              // %
	JSIncrement                           // ++
	JSDecrement                           // --
	JSBitwiseNot                          // ~
	JSLogicalNot                          // !
	JSDivide                              // /
	JSMultiply                            // *
	JSExponentiation                      // **
	JSLessThan                            // <
	JSLessThanEqualTo                     // <=
	JSGreaterThan                         // >
	JSGreaterThanEqualTo                  // >=
	JSEqual                               // ==
	JSStrictEqual                         // ===
	JSNotEqual                            // !=
	JSStrictNotEqual                      // !==
	JSBitwiseLeftShift                    // <<
	JSBitwiseRightShift                   // >>
	JSBitwiseUnsignedRightShift           // >>>
	JSBitwiseAnd                          // &
	JSBitwiseOr                           // |
	JSBitwiseXor                          // ^
	JSLogicalAnd                          // &&
	JSLogicalOr                           // ||
	JSQuestionMark                        // ?
	JSColon                               // :
	JSMultiplicationAssignment            // *=
	JSDivisionAssignment                  // /=
	JSModuloAssignment                    // %=
	JSAdditionAssignment                  // +=
	JSSubtractionAssignment               // -=
	JSBitwiseLeftShiftAssignment          // <<=
	JSBitwiseRightShiftAssignment         // >>=
	JSBitwiseUnsignedRightShiftAssignment // >>>=
	JSBitwiseAndAssignment                // &=
	JSBitwiseOrAssignment                 // |=
	JSBitwiseXorAssignment                // ^=
	JSComma                               // ,
	JSDoubleQuote                         // "
	JSSingleQuote                         // '
	JSBackslash                           // \
	JSSemicolon                           // ;

	JSRazorCommentTransition
	JSRazorCommentStar
	JSRazorComment
)

//nolint:gochecknoglobals // Read-only lookup table.
var jsTypeSamples = map[JSType]string{
	JSDot:                                 ".",
	JSAssignment:                          "=",
	JSLeftBracket:                         "[",
	JSRightBracket:                        "]",
	JSLeftParen:                           "(",
	JSRightParen:                          ")",
	JSLeftBrace:                           "{",
	JSRightBrace:                          "}",
	JSPlus:                                "+",
	JSMinus:                               "-",
	JSModulo:                              "%",
	JSIncrement:                           "++",
	JSDecrement:                           "--",
	JSBitwiseNot:                          "~",
	JSLogicalNot:                          "!",
	JSDivide:                              "/",
	JSMultiply:                            "*",
	JSExponentiation:                      "**",
	JSLessThan:                            "<",
	JSLessThanEqualTo:                     "<=",
	JSGreaterThan:                         ">",
	JSGreaterThanEqualTo:                  ">=",
	JSEqual:                               "==",
	JSStrictEqual:                         "===",
	JSNotEqual:                            "!=",
	JSStrictNotEqual:                      "!==",
	JSBitwiseLeftShift:                    "<<",
	JSBitwiseRightShift:                   ">>",
	JSBitwiseUnsignedRightShift:           ">>>",
	JSBitwiseAnd:                          "&",
	JSBitwiseOr:                           "|",
	JSBitwiseXor:                          "^",
	JSLogicalAnd:                          "&&",
	JSLogicalOr:                           "||",
	JSQuestionMark:                        "?",
	JSColon:                               ":",
	JSMultiplicationAssignment:            "*=",
	JSDivisionAssignment:                  "/=",
	JSModuloAssignment:                    "%=",
	JSAdditionAssignment:                  "+=",
	JSSubtractionAssignment:               "-=",
	JSBitwiseLeftShiftAssignment:          "<<=",
	JSBitwiseRightShiftAssignment:         ">>=",
	JSBitwiseUnsignedRightShiftAssignment: ">>>=",
	JSBitwiseAndAssignment:                "&=",
	JSBitwiseOrAssignment:                 "|=",
	JSBitwiseXorAssignment:                "^=",
	JSComma:                               ",",
	JSDoubleQuote:                         "\"",
	JSSingleQuote:                         "'",
	JSBackslash:                           "\\",
	JSSemicolon:                           ";",
}

// Sample returns the fixed text of a punctuator or operator type, or "" for
// types whose content varies.
func (t JSType) Sample() string {
	return jsTypeSamples[t]
}

// JS is a script symbol.
type JS = Symbol[JSType]

// Keyword identifies a reserved word of the script language.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordAwait
	KeywordBreak
	KeywordCase
	KeywordClass
	KeywordCatch
	KeywordConst
	KeywordContinue
	KeywordDebugger
	KeywordDefault
	KeywordDelete
	KeywordDo
	KeywordElse
	KeywordEnum
	KeywordExport
	KeywordExtends
	KeywordFalse
	KeywordFinally
	KeywordFor
	KeywordFunction
	KeywordIf
	KeywordImplements
	KeywordImport
	KeywordIn
	KeywordInterface
	KeywordInstanceof
	KeywordLet
	KeywordNew
	KeywordNull
	KeywordPackage
	KeywordPrivate
	KeywordProtected
	KeywordPublic
	KeywordReturn
	KeywordStatic
	KeywordSuper
	KeywordSwitch
	KeywordThis
	KeywordThrow
	KeywordTrue
	KeywordTry
	KeywordTypeof
	KeywordVar
	KeywordVoid
	KeywordWhile
	KeywordWith
	KeywordYield
)

//nolint:gochecknoglobals // Read-only lookup table.
var keywordNames = [...]string{
	KeywordAwait:      "await",
	KeywordBreak:      "break",
	KeywordCase:       "case",
	KeywordClass:      "class",
	KeywordCatch:      "catch",
	KeywordConst:      "const",
	KeywordContinue:   "continue",
	KeywordDebugger:   "debugger",
	KeywordDefault:    "default",
	KeywordDelete:     "delete",
	KeywordDo:         "do",
	KeywordElse:       "else",
	KeywordEnum:       "enum",
	KeywordExport:     "export",
	KeywordExtends:    "extends",
	KeywordFalse:      "false",
	KeywordFinally:    "finally",
	KeywordFor:        "for",
	KeywordFunction:   "function",
	KeywordIf:         "if",
	KeywordImplements: "implements",
	KeywordImport:     "import",
	KeywordIn:         "in",
	KeywordInterface:  "interface",
	KeywordInstanceof: "instanceof",
	KeywordLet:        "let",
	KeywordNew:        "new",
	KeywordNull:       "null",
	KeywordPackage:    "package",
	KeywordPrivate:    "private",
	KeywordProtected:  "protected",
	KeywordPublic:     "public",
	KeywordReturn:     "return",
	KeywordStatic:     "static",
	KeywordSuper:      "super",
	KeywordSwitch:     "switch",
	KeywordThis:       "this",
	KeywordThrow:      "throw",
	KeywordTrue:       "true",
	KeywordTry:        "try",
	KeywordTypeof:     "typeof",
	KeywordVar:        "var",
	KeywordVoid:       "void",
	KeywordWhile:      "while",
	KeywordWith:       "with",
	KeywordYield:      "yield",
}

//nolint:gochecknoglobals // Read-only lookup table.
var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for kw, word := range keywordNames {
		if word != "" {
			m[word] = Keyword(kw)
		}
	}
	return m
}()

// LookupKeyword returns the keyword spelled by id.
func LookupKeyword(id string) (Keyword, bool) {
	kw, ok := keywords[id]
	return kw, ok
}

func (k Keyword) String() string {
	if k <= KeywordNone || int(k) >= len(keywordNames) {
		return ""
	}
	return keywordNames[k]
}

// KeywordOf returns the keyword of a JSKeyword symbol.
func KeywordOf(sym *JS) (Keyword, bool) {
	if sym == nil || sym.Type() != JSKeyword {
		return KeywordNone, false
	}
	return LookupKeyword(sym.Content())
}
