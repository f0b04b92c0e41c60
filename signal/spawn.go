package signal

// Spawner launches one handler invocation as an independent unit of work.
// The drain loop never waits on a launch; only launch order is defined,
// never completion order.
type Spawner interface {
	Spawn(fn func())
}

type goSpawner struct{}

func (goSpawner) Spawn(fn func()) { go fn() }

// Go is the default spawner: one goroutine per launch.
func Go() Spawner { return goSpawner{} }

type inlineSpawner struct{}

func (inlineSpawner) Spawn(fn func()) { fn() }

// Inline runs handlers synchronously on the firing goroutine, which makes
// launch order the execution order. Handlers must not block; in
// particular Wait on the same signal from an inline handler deadlocks.
func Inline() Spawner { return inlineSpawner{} }
