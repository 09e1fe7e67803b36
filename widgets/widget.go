package widgets

// Widget is anything that can draw itself into a width x height cell.
type Widget interface {
	Render(width, height int) string
}
