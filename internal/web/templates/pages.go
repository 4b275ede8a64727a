package templates

import "github.com/rugbyops/zoneclips/internal/model"

// LoginData holds state for the login page
type LoginData struct {
	PageData
	Email string
	Error string
}

// Login renders the login page
func Login(data LoginData) Component {
	return Component{tmpl: loginTmpl, data: data}
}

// RegisterData holds state for the registration page
type RegisterData struct {
	PageData
	Email string
	Error string
}

// Register renders the registration page
func Register(data RegisterData) Component {
	return Component{tmpl: registerTmpl, data: data}
}

// ZoneGroup is one pitch zone and the clips tagged with it, in display order
type ZoneGroup struct {
	Zone   model.Zone
	Label  string
	Videos []model.Video
}

// VideosData holds state for the zone-grouped clip listing
type VideosData struct {
	PageData
	Groups []ZoneGroup
}

// Videos renders the clip listing page
func Videos(data VideosData) Component {
	return Component{tmpl: videosTmpl, data: data}
}

// AdminUsersData holds state for the account management page
type AdminUsersData struct {
	PageData
	Users []model.User
}

// AdminUsers renders the account management page
func AdminUsers(data AdminUsersData) Component {
	return Component{tmpl: adminUsersTmpl, data: data}
}

// ZoneOption is a zone choice in the video forms
type ZoneOption struct {
	Value model.Zone
	Label string
}

// ZoneOptions returns the known zones as form choices
func ZoneOptions() []ZoneOption {
	zones := model.Zones()
	opts := make([]ZoneOption, 0, len(zones))
	for _, z := range zones {
		opts = append(opts, ZoneOption{Value: z, Label: z.Label()})
	}
	return opts
}

// AdminVideosData holds state for the video management page
type AdminVideosData struct {
	PageData
	Videos []model.Video
	Zones  []ZoneOption
}

// AdminVideos renders the video management page
func AdminVideos(data AdminVideosData) Component {
	return Component{tmpl: adminVideosTmpl, data: data}
}

// ForbiddenData holds state for the blocked-access page
type ForbiddenData struct {
	PageData
}

// Forbidden renders the blocked-access page
func Forbidden(data ForbiddenData) Component {
	return Component{tmpl: forbiddenTmpl, data: data}
}
