package ri

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotBegun      = errors.New("ri: call issued before Begin")
	ErrEnded         = errors.New("ri: call issued after End")
	ErrBlockMismatch = errors.New("ri: mismatched block end")
	ErrOpenBlocks    = errors.New("ri: End called with open blocks")
	ErrOutsideWorld  = errors.New("ri: call only valid inside a world block")
	ErrInsideWorld   = errors.New("ri: call only valid outside a world block")
	ErrNestedWorld   = errors.New("ri: world blocks cannot be nested")
	ErrNestedFrame   = errors.New("ri: Begin called inside an open frame")
)

type blockKind uint8

const (
	blockWorld blockKind = iota
	blockTransform
	blockAttribute
)

func (k blockKind) String() string {
	switch k {
	case blockWorld:
		return "WorldBegin"
	case blockTransform:
		return "TransformBegin"
	case blockAttribute:
		return "AttributeBegin"
	}
	return "unknown"
}

// callScope describes where a call may legally appear.
type callScope uint8

const (
	scopeAny callScope = iota
	scopeOptions
	scopeWorld
)

type frameState uint8

const (
	stateIdle frameState = iota
	stateOpen
	stateClosed
)

// The blockTracker enforces Begin/End ordering and block nesting.
type blockTracker struct {
	state   frameState
	blocks  []blockKind
	inWorld bool
}

// Depth returns the number of currently open blocks.
func (bt *blockTracker) Depth() int {
	return len(bt.blocks)
}

func (bt *blockTracker) check(call string, scope callScope) error {
	switch bt.state {
	case stateIdle:
		return fmt.Errorf("%w: %s", ErrNotBegun, call)
	case stateClosed:
		return fmt.Errorf("%w: %s", ErrEnded, call)
	}

	switch scope {
	case scopeOptions:
		if bt.inWorld {
			return fmt.Errorf("%w: %s", ErrInsideWorld, call)
		}
	case scopeWorld:
		if !bt.inWorld {
			return fmt.Errorf("%w: %s", ErrOutsideWorld, call)
		}
	}
	return nil
}

func (bt *blockTracker) begin() error {
	switch bt.state {
	case stateOpen:
		return ErrNestedFrame
	case stateClosed:
		return fmt.Errorf("%w: Begin", ErrEnded)
	}
	bt.state = stateOpen
	return nil
}

func (bt *blockTracker) end() error {
	if err := bt.check("End", scopeAny); err != nil {
		return err
	}
	if len(bt.blocks) != 0 {
		open := make([]string, len(bt.blocks))
		for i, b := range bt.blocks {
			open[i] = b.String()
		}
		return fmt.Errorf("%w: %s", ErrOpenBlocks, strings.Join(open, ", "))
	}
	bt.state = stateClosed
	return nil
}

func (bt *blockTracker) push(call string, kind blockKind) error {
	if err := bt.check(call, scopeAny); err != nil {
		return err
	}
	if kind == blockWorld {
		if bt.inWorld {
			return fmt.Errorf("%w: %s", ErrNestedWorld, call)
		}
		bt.inWorld = true
	}
	bt.blocks = append(bt.blocks, kind)
	return nil
}

func (bt *blockTracker) pop(call string, kind blockKind) error {
	if err := bt.check(call, scopeAny); err != nil {
		return err
	}
	if len(bt.blocks) == 0 {
		return fmt.Errorf("%w: %s without a matching %s", ErrBlockMismatch, call, kind)
	}
	top := bt.blocks[len(bt.blocks)-1]
	if top != kind {
		return fmt.Errorf("%w: %s closes an open %s", ErrBlockMismatch, call, top)
	}
	bt.blocks = bt.blocks[:len(bt.blocks)-1]
	if kind == blockWorld {
		bt.inWorld = false
	}
	return nil
}
