package models

// Section identifies the active dashboard section
type Section string

const (
	SectionDashboard    Section = "dashboard"
	SectionPlanningRail Section = "planning-rail"
	SectionFlightsRail  Section = "flights-rail"
	SectionEquipment    Section = "equipment"
	SectionRequests     Section = "requests"
	SectionAccounts     Section = "accounts"
	SectionReports      Section = "reports"
)

// Session is the UI-session state held by the store
type Session struct {
	CurrentUser *User   `json:"current_user"`
	Section     Section `json:"section"`
	SidebarOpen bool    `json:"sidebar_open"`
	DarkMode    bool    `json:"dark_mode"`
}

type SetSectionRequest struct {
	Section Section `json:"section"`
}

type SetSidebarRequest struct {
	Open bool `json:"open"`
}
