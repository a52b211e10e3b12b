package hal

type hostHAL struct {
	fb  *hostFramebuffer
	kbd Keyboard
}

// New returns a host HAL with a width×height framebuffer and the given keyboard.
// A nil keyboard reads as nothing pressed.
func New(width, height int, kbd Keyboard) HAL {
	return newHostHAL(width, height, kbd)
}

func newHostHAL(width, height int, kbd Keyboard) *hostHAL {
	if kbd == nil {
		kbd = NewKeySet()
	}
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: kbd,
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
