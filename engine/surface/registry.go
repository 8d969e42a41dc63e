/*
Package surface connects editable surfaces of a host application to text
buffers.

A host keeps a Registry of the surfaces currently being edited. Key events of
a surface are translated to Commands and applied to the surface's buffer.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package surface

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/rtltext/farsitext/core"
	"github.com/rtltext/farsitext/engine/text/editbuf"
)

// tracer traces with key 'farsitext.surface'.
func tracer() tracing.Trace {
	return tracing.Select("farsitext.surface")
}

// Registry maps surface handles to the buffers editing them.
// Buffers are created on first access and live until they are disposed.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	buffers *treemap.Map // string → *editbuf.Buffer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{buffers: treemap.NewWithStringComparator()}
}

// Acquire returns the buffer for surface id. If the surface has no buffer
// yet, one is created from the surface's current display text, writing to
// sink. For surfaces already known, display and sink are ignored.
func (reg *Registry) Acquire(id string, display string, sink editbuf.Sink) *editbuf.Buffer {
	if buf, err := reg.Lookup(id); err == nil {
		return buf
	}
	tracer().Infof("creating buffer for surface %q", id)
	buf := editbuf.New(display, sink)
	reg.buffers.Put(id, buf)
	return buf
}

// Lookup returns the buffer for surface id. If there is none, an error with
// code core.EMISSING is returned.
func (reg *Registry) Lookup(id string) (*editbuf.Buffer, error) {
	v, found := reg.buffers.Get(id)
	if !found {
		return nil, core.Error(core.EMISSING, "no buffer for surface %q", id)
	}
	return v.(*editbuf.Buffer), nil
}

// Dispose drops the buffer of surface id, if any.
func (reg *Registry) Dispose(id string) {
	if _, found := reg.buffers.Get(id); found {
		tracer().Infof("disposing buffer of surface %q", id)
		reg.buffers.Remove(id)
	}
}

// IDs returns the handles of all surfaces with a buffer, in sorted order.
func (reg *Registry) IDs() []string {
	keys := reg.buffers.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}

// Len returns the number of registered surfaces.
func (reg *Registry) Len() int {
	return reg.buffers.Size()
}

// Dispatch applies a key event to the buffer of surface id.
func (reg *Registry) Dispatch(id string, key string, text string) error {
	buf, err := reg.Lookup(id)
	if err != nil {
		return err
	}
	cmd, err := KeyCommand(key, text)
	if err != nil {
		return err
	}
	return Apply(buf, cmd)
}
