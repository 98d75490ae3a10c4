package registry

import "slices"

// Name is the exported JavaScript name of a binding.
type Name string

const (
	LandingView Name = "landingViewElement"
	LoginView   Name = "loginViewElement"
	UploadView  Name = "uploadViewElement"
	ReaderView  Name = "readerViewElement"
	Views       Name = "views"

	GetStartedButton   Name = "getStartedButton"
	LoginForm          Name = "loginForm"
	LoginEmailInput    Name = "loginEmailInput"
	LoginPasswordInput Name = "loginPasswordInput"
	LoginButton        Name = "loginButton"
	LogoutButton       Name = "logoutButton"

	FileInput                Name = "fileInput"
	DropZone                 Name = "dropZone"
	SelectFileButton         Name = "selectFileButton"
	UploadButtonHeader       Name = "uploadButtonHeader"
	UploadButtonHeaderMobile Name = "uploadButtonHeaderMobile"

	ImageContainer Name = "imageContainer"
	ComicImage     Name = "comicImage"

	PageIndicatorHud Name = "pageIndicatorHud"
	HudOverlay       Name = "hudOverlay"

	BackButton      Name = "backButton"
	MenuButton      Name = "menuButton"
	MenuPanel       Name = "menuPanel"
	CloseMenuButton Name = "closeMenuButton"

	MangaModeToggle    Name = "mangaModeToggle"
	ZoomInButtonPanel  Name = "zoomInButtonPanel"
	ZoomOutButtonPanel Name = "zoomOutButtonPanel"

	FitLabels Name = "fitLabels"

	ReaderMessage Name = "readerMessage"
)

type Lookup int

const (
	// ByID resolves to at most one element.
	ByID Lookup = iota
	// QueryAll resolves to an ordered, possibly empty, node set.
	QueryAll
	// Group is a keyed object over other ByID bindings.
	Group
)

func (l Lookup) String() string {
	switch l {
	case ByID:
		return "id"
	case QueryAll:
		return "query-all"
	case Group:
		return "group"
	default:
		return "unknown"
	}
}

type Member struct {
	Key    string
	Target Name
}

type Binding struct {
	Name     Name
	Lookup   Lookup
	Selector string
	Members  []Member
	Doc      []string
}

type Section struct {
	Title    string
	Doc      []string
	Bindings []Binding
}

func id(name Name, elementID string, doc ...string) Binding {
	return Binding{Name: name, Lookup: ByID, Selector: elementID, Doc: doc}
}

var sections = []Section{
	{
		Title: "View Elements",
		Doc:   []string{"Top-level view containers. Exactly one is shown at a time."},
		Bindings: []Binding{
			id(LandingView, "landingView", "Public entry page."),
			id(LoginView, "loginView", "Authentication screen."),
			id(UploadView, "uploadView", "Start screen where a comic file is chosen."),
			id(ReaderView, "readerView", "Screen that displays the comic pages."),
			{
				Name:   Views,
				Lookup: Group,
				Members: []Member{
					{Key: "landing", Target: LandingView},
					{Key: "login", Target: LoginView},
					{Key: "upload", Target: UploadView},
					{Key: "reader", Target: ReaderView},
				},
				Doc: []string{"View containers keyed by view name, for view switching."},
			},
		},
	},
	{
		Title: "Landing & Login Elements",
		Bindings: []Binding{
			id(GetStartedButton, "getStartedButton", "\"Get Started\" button on the landing page."),
			id(LoginForm, "loginForm", "Login form wrapping the credential inputs."),
			id(LoginEmailInput, "loginEmail", "Email field of the login form."),
			id(LoginPasswordInput, "loginPassword", "Password field of the login form."),
			id(LoginButton, "loginButton", "Submit button of the login form."),
			id(LogoutButton, "logoutButton", "Ends the session and returns to the landing view."),
		},
	},
	{
		Title: "File Input and Upload Elements",
		Bindings: []Binding{
			id(FileInput, "fileInput", "Hidden <input type=file> used to pick comic files."),
			id(DropZone, "dropZone", "Drag and drop target for comic files."),
			id(SelectFileButton, "selectFileButton", "Opens the file picker."),
			id(UploadButtonHeader, "uploadButtonHeader", "Header shortcut back to the upload view."),
			id(UploadButtonHeaderMobile, "uploadButtonHeaderMobile", "Mobile layout variant of uploadButtonHeader."),
		},
	},
	{
		Title: "Reader View - Image Display Elements",
		Bindings: []Binding{
			id(ImageContainer, "imageContainer", "Scroll and positioning container around the page image."),
			id(ComicImage, "comicImage", "<img> that renders the current page."),
		},
	},
	{
		Title: "Reader View - HUD and Overlay Elements",
		Bindings: []Binding{
			id(PageIndicatorHud, "pageIndicatorHud", "Page counter, e.g. \"Page 1 of 10\"."),
			id(HudOverlay, "hudOverlay", "Overlay drawn over the page image for controls and notices."),
		},
	},
	{
		Title: "Reader View - Navigation and Menu Elements",
		Bindings: []Binding{
			id(BackButton, "backButton", "Leaves the reader and goes back to the upload view."),
			id(MenuButton, "menuButton", "Opens menuPanel."),
			id(MenuPanel, "menuPanel", "Settings panel opened by menuButton."),
			id(CloseMenuButton, "closeMenuButton", "Closes menuPanel."),
		},
	},
	{
		Title: "Reader View - Reader Mode and Zoom Controls",
		Bindings: []Binding{
			id(MangaModeToggle, "mangaModeToggle", "Right-to-left reading toggle."),
			id(ZoomInButtonPanel, "zoomInButtonPanel", "Zoom in control inside menuPanel."),
			id(ZoomOutButtonPanel, "zoomOutButtonPanel", "Zoom out control inside menuPanel."),
		},
	},
	{
		Title: "Reader View - Fit Options",
		Bindings: []Binding{
			{
				Name:     FitLabels,
				Lookup:   QueryAll,
				Selector: ".fit-label",
				Doc:      []string{"Labels of the image fit options (width, height, original)."},
			},
		},
	},
	{
		Title: "Reader View - Messaging",
		Bindings: []Binding{
			id(ReaderMessage, "readerMessage", "Loading and error messages inside the reader view."),
		},
	},
}

// Sections returns the binding table grouped by UI area, in output order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Bindings = slices.Clone(s.Bindings)
		out[i] = s
	}

	return out
}

// Bindings returns the flattened binding table in output order.
func Bindings() []Binding {
	var out []Binding
	for _, s := range sections {
		out = append(out, s.Bindings...)
	}

	return out
}

// Find returns the binding exported as name.
func Find(name Name) (Binding, bool) {
	for _, s := range sections {
		for _, b := range s.Bindings {
			if b.Name == name {
				return b, true
			}
		}
	}

	return Binding{}, false
}
