package integrations

import "errors"

var (
	// ErrCircuitOpen is returned when an adapter's breaker is open and the
	// call was shed without reaching the remote host.
	ErrCircuitOpen = errors.New("integrations: circuit open")

	// ErrNoAssetFound is returned when a search completes but yields no
	// usable asset.
	ErrNoAssetFound = errors.New("integrations: no asset found")

	// ErrImportFailed is returned when an asset was located or generated
	// but could not be imported into the scene.
	ErrImportFailed = errors.New("integrations: import failed")

	// ErrGenerationTimeout is returned when a generation job does not
	// complete within the polling budget.
	ErrGenerationTimeout = errors.New("integrations: generation timed out")

	// ErrNotEnabled is returned when the classified route's integration is
	// disabled on the remote host.
	ErrNotEnabled = errors.New("integrations: integration not enabled")
)
