package scanner

// Kind classifies how a placeholder identifies its value.
type Kind uint8

const (
	Named      Kind = iota // :id, @id, $id, {id}
	Positional             // $1, $2 ...
	Bare                   // ?
)

func (k Kind) String() string {
	switch k {
	case Named:
		return "named"
	case Positional:
		return "positional"
	case Bare:
		return "bare"
	default:
		return "unknown"
	}
}

// Syntax records which placeholder grammar produced an occurrence.
type Syntax uint8

const (
	SyntaxColon Syntax = iota
	SyntaxAt
	SyntaxDollarName
	SyntaxBrace
	SyntaxDollarNumber
	SyntaxQuestion
)

// Kind reports the occurrence kind implied by the grammar.
func (s Syntax) Kind() Kind {
	switch s {
	case SyntaxDollarNumber:
		return Positional
	case SyntaxQuestion:
		return Bare
	default:
		return Named
	}
}

// Literal renders key in this grammar, exactly as it appears in SQL text.
func (s Syntax) Literal(key string) string {
	switch s {
	case SyntaxColon:
		return ":" + key
	case SyntaxAt:
		return "@" + key
	case SyntaxDollarName, SyntaxDollarNumber:
		return "$" + key
	case SyntaxBrace:
		return "{" + key + "}"
	default:
		return "?"
	}
}

// Occurrence is one concrete appearance of a placeholder in SQL text.
//
// Position is the byte offset of the placeholder's first character (its
// prefix). SequenceIndex is the rank of the occurrence in position order.
type Occurrence struct {
	Key           string
	Position      int
	Kind          Kind
	Syntax        Syntax
	SequenceIndex int
}

// Literal returns the source text of the occurrence.
func (o Occurrence) Literal() string {
	return o.Syntax.Literal(o.Key)
}

// End returns the offset just past the occurrence.
func (o Occurrence) End() int {
	return o.Position + len(o.Literal())
}
