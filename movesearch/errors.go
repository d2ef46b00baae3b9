package movesearch

import "errors"

// ErrInvalidRotationCount reports an R value outside {1, 2, 4}.
var ErrInvalidRotationCount = errors.New("movesearch: R must be 1, 2, or 4")

// ErrInvalidPieceKind reports a PieceKind absent from the piece→R table.
var ErrInvalidPieceKind = errors.New("movesearch: unknown piece kind")
