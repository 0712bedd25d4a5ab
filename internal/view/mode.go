// Package view holds the panel models the storefront pages render and the
// templates that render them.
package view

// Mode is fixed when a page's state manager is built and decides which panels
// that page carries.
type Mode string

const (
	ModeDropdown     Mode = "dropdown"
	ModeCartPage     Mode = "cart-page"
	ModeCheckoutPage Mode = "checkout-page"
	ModeConfirmation Mode = "confirmation-page"
	ModeTracking     Mode = "tracking-page"
)

type Panel string

const (
	PanelNav          Panel = "nav"
	PanelDropdown     Panel = "dropdown"
	PanelCart         Panel = "cart"
	PanelCheckout     Panel = "checkout"
	PanelConfirmation Panel = "confirmation"
	PanelTracking     Panel = "tracking"
)

var modePanels = map[Mode][]Panel{
	ModeDropdown:     {PanelNav, PanelDropdown},
	ModeCartPage:     {PanelNav, PanelDropdown, PanelCart},
	ModeCheckoutPage: {PanelNav, PanelDropdown, PanelCheckout},
	ModeConfirmation: {PanelNav, PanelDropdown, PanelConfirmation},
	ModeTracking:     {PanelNav, PanelDropdown, PanelTracking},
}

func (m Mode) Valid() bool {
	_, ok := modePanels[m]
	return ok
}

// Has reports whether pages in this mode carry p.
func (m Mode) Has(p Panel) bool {
	for _, cur := range modePanels[m] {
		if cur == p {
			return true
		}
	}
	return false
}

func (m Mode) Panels() []Panel {
	out := make([]Panel, len(modePanels[m]))
	copy(out, modePanels[m])
	return out
}

// Target is a page the storefront can navigate to.
type Target string

const (
	TargetHome         Target = "home"
	TargetLogin        Target = "login"
	TargetSignup       Target = "signup"
	TargetCart         Target = "cart"
	TargetCheckout     Target = "checkout"
	TargetConfirmation Target = "confirmation"
	TargetTracking     Target = "tracking"
)

var targets = map[Target]struct {
	path string
	mode Mode
}{
	TargetHome:         {"/", ModeDropdown},
	TargetLogin:        {"/login", ModeDropdown},
	TargetSignup:       {"/signup", ModeDropdown},
	TargetCart:         {"/cart", ModeCartPage},
	TargetCheckout:     {"/checkout", ModeCheckoutPage},
	TargetConfirmation: {"/order-confirmation", ModeConfirmation},
	TargetTracking:     {"/track-order", ModeTracking},
}

func (t Target) Path() string {
	if v, ok := targets[t]; ok {
		return v.path
	}
	return "/"
}

// Mode is the mode a manager serving this page is built with.
func (t Target) Mode() Mode {
	if v, ok := targets[t]; ok {
		return v.mode
	}
	return ModeDropdown
}

func Targets() []Target {
	return []Target{
		TargetHome,
		TargetLogin,
		TargetSignup,
		TargetCart,
		TargetCheckout,
		TargetConfirmation,
		TargetTracking,
	}
}
