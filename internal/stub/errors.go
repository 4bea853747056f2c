package stub

import "errors"

var ErrNothingToAccept = errors.New("stub verifier accepts no tokens: set accepted tokens or a sign key")
