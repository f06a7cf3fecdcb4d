package trellis

import (
	"fmt"
	"strings"
)

// recorder is a Backend that records every call as a short string and
// answers interaction queries from scripted state.
type recorder struct {
	calls     []string
	clicks    map[string]bool // button titles that activate on the next render
	buffers   map[BufferHandle]*fakeBuffer
	nextBuf   BufferHandle
	acquired  int
	released  []BufferHandle
	endFrames int
	depth     int
	maxDepth  int
}

type fakeBuffer struct {
	text string
	prev string
}

func newRecorder() *recorder {
	return &recorder{
		clicks:  make(map[string]bool),
		buffers: make(map[BufferHandle]*fakeBuffer),
	}
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) BeginWindow(title string, flags WindowFlags) { r.record("window:%s", title) }
func (r *recorder) EndWindow()                                  { r.record("endwindow") }

func (r *recorder) BeginChild(title string, size Size, border bool, flags WindowFlags) {
	r.record("child:%s", title)
}

func (r *recorder) EndChild() { r.record("endchild") }

func (r *recorder) PushID(id ID) {
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
	r.record("push:%d", id)
}

func (r *recorder) PopID() {
	r.depth--
	if r.depth < 0 {
		panic("recorder: PopID without PushID")
	}
	r.record("pop")
}

func (r *recorder) Button(title string, size Size) bool {
	r.record("button:%s", title)
	clicked := r.clicks[title]
	delete(r.clicks, title)
	return clicked
}

func (r *recorder) Text(s string) { r.record("text:%s", s) }

func (r *recorder) AcquireTextBuffer() BufferHandle {
	r.nextBuf++
	r.acquired++
	r.buffers[r.nextBuf] = &fakeBuffer{}
	return r.nextBuf
}

func (r *recorder) ReleaseTextBuffer(h BufferHandle) {
	if _, ok := r.buffers[h]; !ok {
		panic("recorder: release of unknown buffer")
	}
	delete(r.buffers, h)
	r.released = append(r.released, h)
}

func (r *recorder) ReadTextBuffer(h BufferHandle) string {
	return r.buffers[h].text
}

func (r *recorder) InputText(title string, h BufferHandle, size Size, multiline bool) bool {
	if multiline {
		r.record("multiline:%s", title)
	} else {
		r.record("input:%s", title)
	}
	buf, ok := r.buffers[h]
	if !ok {
		panic("recorder: unknown buffer")
	}
	changed := buf.text != buf.prev
	buf.prev = buf.text
	return changed
}

func (r *recorder) EndFrame() {
	r.endFrames++
	r.record("endframe")
}

// click makes the button titled title activate on its next render.
func (r *recorder) click(title string) {
	r.clicks[title] = true
}

// setText simulates the user editing the buffer behind h.
func (r *recorder) setText(h BufferHandle, s string) {
	r.buffers[h].text = s
}

// reset clears the recorded calls.
func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

// draws returns the recorded region and widget calls of the current
// recording, without scope pushes, pops, ends or frame markers.
func (r *recorder) draws() []string {
	var out []string
	for _, c := range r.calls {
		if c == "pop" || c == "endframe" || strings.HasPrefix(c, "push:") || strings.HasPrefix(c, "end") {
			continue
		}
		out = append(out, c)
	}
	return out
}

// count returns how many recorded calls equal call.
func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}
