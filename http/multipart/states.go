package multipart

type parserState uint8

const (
	eBoundary parserState = iota + 1
	eAfterBoundary
	eHeaders
	eData
	eDone
)

func (s parserState) String() string {
	switch s {
	case eBoundary:
		return "boundary"
	case eAfterBoundary:
		return "after boundary"
	case eHeaders:
		return "headers"
	case eData:
		return "data"
	case eDone:
		return "done"
	default:
		return "unknown"
	}
}
