// Package ports defines the interfaces between the engine and its
// collaborators. Adapters implement them; the app layer consumes them.
package ports

import (
	"context"

	"godescribe/domain/summary"
	"godescribe/domain/table"
)

// DatasetReader turns one raw dataset source into a Table. Readers own
// no statistics logic; they only normalize records into the header
// width and account for what they had to recover from. Implementations
// must honor ctx cancellation between row batches.
type DatasetReader interface {
	ReadTable(ctx context.Context) (*table.Table, error)
}

// Renderer turns a result matrix into a display representation. Number
// formatting belongs here, not in the engine.
type Renderer interface {
	Render(m *summary.ResultMatrix) ([]byte, error)
}
