package symbol

// KnownType names the symbol roles every language maps onto its own types.
type KnownType int

const (
	KnownWhiteSpace KnownType = iota
	KnownNewLine
	KnownIdentifier
	KnownKeyword
	KnownTransition
	KnownUnknown
	KnownCommentStart
	KnownCommentStar
	KnownCommentBody
)

//nolint:gochecknoglobals // Read-only lookup table.
var knownTypeNames = [...]string{
	KnownWhiteSpace:   "WhiteSpace",
	KnownNewLine:      "NewLine",
	KnownIdentifier:   "Identifier",
	KnownKeyword:      "Keyword",
	KnownTransition:   "Transition",
	KnownUnknown:      "Unknown",
	KnownCommentStart: "CommentStart",
	KnownCommentStar:  "CommentStar",
	KnownCommentBody:  "CommentBody",
}

func (k KnownType) String() string {
	if k < 0 || int(k) >= len(knownTypeNames) {
		return "Unknown"
	}
	return knownTypeNames[k]
}
