package extract

// Kind is the rendering class of an element. Classification is total: every
// tag maps to exactly one kind, with unrecognized tags falling through to
// KindContainer.
type Kind int

const (
	KindContainer Kind = iota
	KindHeading
	KindParagraph
	KindLineBreak
	KindRule
	KindStrong
	KindEmphasis
	KindCode
	KindCodeBlock
	KindLink
	KindImage
	KindList
	KindListItem
	KindBlockquote
	KindTable
	KindTableRow
	KindTableCell
	KindExcluded
)

// Class is the result of classifying a tag: its kind plus the kind-specific
// detail the rendering rule needs.
type Class struct {
	Kind    Kind
	Level   int  // headings: 1..6
	Ordered bool // lists: ol vs ul
	Header  bool // table cells: th vs td
}

// renderExcluded lists tags that contribute nothing to markdown output and
// whose subtrees are never visited.
var renderExcluded = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"meta":     true,
	"link":     true,
	"iframe":   true,
}

// Classify maps a lowercase tag name to its rendering class.
func Classify(tag string) Class {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return Class{Kind: KindHeading, Level: int(tag[1] - '0')}
	case "p":
		return Class{Kind: KindParagraph}
	case "br":
		return Class{Kind: KindLineBreak}
	case "hr":
		return Class{Kind: KindRule}
	case "strong", "b":
		return Class{Kind: KindStrong}
	case "em", "i":
		return Class{Kind: KindEmphasis}
	case "code":
		return Class{Kind: KindCode}
	case "pre":
		return Class{Kind: KindCodeBlock}
	case "a":
		return Class{Kind: KindLink}
	case "img":
		return Class{Kind: KindImage}
	case "ul":
		return Class{Kind: KindList}
	case "ol":
		return Class{Kind: KindList, Ordered: true}
	case "li":
		return Class{Kind: KindListItem}
	case "blockquote":
		return Class{Kind: KindBlockquote}
	case "table":
		return Class{Kind: KindTable}
	case "tr":
		return Class{Kind: KindTableRow}
	case "th":
		return Class{Kind: KindTableCell, Header: true}
	case "td":
		return Class{Kind: KindTableCell}
	default:
		if renderExcluded[tag] {
			return Class{Kind: KindExcluded}
		}
		return Class{Kind: KindContainer}
	}
}
