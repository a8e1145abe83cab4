package driver

import "cee/internal/source"

func spanAt(begin, end uint32) source.Span {
	return source.Span{
		Begin: source.Position{Offset: begin, Column: begin},
		End:   source.Position{Offset: end, Column: end},
	}
}
