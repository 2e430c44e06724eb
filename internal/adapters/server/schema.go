package server

// settingsResponse is the body of api/settings/values.
type settingsResponse struct {
	Settings []setting `json:"settings"`
}

type setting struct {
	Key    string   `json:"key"`
	Value  string   `json:"value"`
	Values []string `json:"values"`
}

// profilesResponse is the body of api/qualityprofiles/search.
type profilesResponse struct {
	Profiles []profile `json:"profiles"`
}

type profile struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Language  string `json:"language"`
	IsDefault bool   `json:"isDefault"`
}

// treeResponse is one page of api/components/tree.
type treeResponse struct {
	Paging     paging      `json:"paging"`
	Components []component `json:"components"`
}

type paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

type component struct {
	Key       string `json:"key"`
	Path      string `json:"path"`
	Qualifier string `json:"qualifier"`
}
