package trellis

// BufferHandle names a text buffer owned by a Backend. Zero means no buffer
// has been acquired.
type BufferHandle uint32

// Backend is the immediate-mode renderer the view tree re-declares itself
// to every frame. Implementations keep no widget objects: every call is
// answered for the current frame only.
//
// All methods are called from the goroutine that calls
// Viewport.AdvanceFrame. Resource failures (for example a buffer that
// cannot be allocated) are the backend's to report and should panic.
type Backend interface {
	BeginWindow(title string, flags WindowFlags)
	EndWindow()
	BeginChild(title string, size Size, border bool, flags WindowFlags)
	EndChild()

	// PushID scopes backend-internal widget state (hover, focus, edit
	// cursor) under id until the matching PopID.
	PushID(id ID)
	PopID()

	// Button draws a clickable control and reports whether it was
	// activated during this frame.
	Button(title string, size Size) bool
	// Text draws s verbatim.
	Text(s string)

	AcquireTextBuffer() BufferHandle
	ReleaseTextBuffer(h BufferHandle)
	ReadTextBuffer(h BufferHandle) string
	// InputText draws an editable control bound to h and reports whether
	// the buffer contents changed during this frame.
	InputText(title string, h BufferHandle, size Size, multiline bool) bool

	// EndFrame performs the backend's end-of-frame bookkeeping. It is
	// called once per Viewport.AdvanceFrame call, nested calls included.
	EndFrame()
}
