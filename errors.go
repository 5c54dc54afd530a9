package cratedigger

import (
	"github.com/fraserlangton/cratedigger/internal/types"
)

// TruncatedError is an alias to types.TruncatedError.
// Re-exporting from internal/types so callers can match decoder errors.
type TruncatedError = types.TruncatedError

// InvalidEncodingError is an alias to types.InvalidEncodingError.
// Re-exporting from internal/types so callers can match decoder errors.
type InvalidEncodingError = types.InvalidEncodingError

// IoError is an alias to types.IoError.
// Re-exporting from internal/types so callers can match file failures.
type IoError = types.IoError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain one public surface.
type Warning = types.Warning
