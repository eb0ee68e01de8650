package box

// valueProxy is the storage cell of an owning wrapper. At most one of the
// two fields is live: heap points at a promoted record, embed holds an
// in-place record (tab non-nil). Both clear means empty. The zero value is
// a valid empty cell.
type valueProxy struct {
	heap  *instance
	embed instance
}

// cur returns the live record, or nil when empty.
func (p *valueProxy) cur() *instance {
	if p.heap != nil {
		return p.heap
	}
	if p.embed.tab != nil {
		return &p.embed
	}
	return nil
}

// inSitu reports whether no heap promotion happened. Empty cells are
// trivially in place.
func (p *valueProxy) inSitu() bool {
	return p.heap == nil
}

// place installs a record into an empty cell.
func (p *valueProxy) place(inst instance, inPlace bool) {
	if inPlace {
		p.embed = inst
		return
	}
	promoted := inst
	p.heap = &promoted
}

// release hands the record state to the caller and empties the cell
// without dropping anything. Ownership of the payload moves with it.
func (p *valueProxy) release() (heap *instance, embed instance) {
	heap, embed = p.heap, p.embed
	p.heap = nil
	p.embed = instance{}
	return
}

// clear drops the owned payload, if any, and empties the cell.
func (p *valueProxy) clear() {
	if inst := p.cur(); inst != nil {
		inst.drop()
	}
	p.heap = nil
	p.embed = instance{}
}

// refProxy is the storage cell of a pointer wrapper. alias set means bound
// to another wrapper's live record; embed live means bound directly to a
// caller-owned object (embed.ref is true). Both clear means empty. Pointer
// wrappers never own, so there is no drop path.
type refProxy struct {
	alias *instance
	embed instance
}

// cur returns the bound record, or nil when empty.
func (p *refProxy) cur() *instance {
	if p.alias != nil {
		return p.alias
	}
	if p.embed.tab != nil {
		return &p.embed
	}
	return nil
}
