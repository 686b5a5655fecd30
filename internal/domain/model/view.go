package model

// ViewState is the top-level screen currently shown.
type ViewState string

const (
	ViewMain    ViewState = "main"
	ViewBidding ViewState = "bidding"
	ViewChat    ViewState = "chat"
)

// IsOverlay reports whether the state hides the main tab set.
func (v ViewState) IsOverlay() bool {
	return v == ViewBidding || v == ViewChat
}

// Tab identifies one of the four main panels.
type Tab string

const (
	TabHome    Tab = "home"
	TabWallet  Tab = "wallet"
	TabOrders  Tab = "orders"
	TabProfile Tab = "profile"
)

// Theme is the persisted light/dark preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
