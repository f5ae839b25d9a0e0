package build

import "errors"

// ErrUnsupportedStmt reports a statement kind the instrumenter cannot
// handle. Procedure calls inside check templates are the known case; the
// build aborts rather than passing the call through unchecked.
var ErrUnsupportedStmt = errors.New("unsupported statement in check template")
