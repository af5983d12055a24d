package googlebooks

// volumesResponse is the wire shape of a Google Books volume search.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle"`
	Authors       []string   `json:"authors"`
	Categories    []string   `json:"categories"`
	PageCount     int        `json:"pageCount"`
	PublishedDate string     `json:"publishedDate"`
	Language      string     `json:"language"`
	ImageLinks    imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// Suggestion is one autofill candidate for the add-book form. Category
// is the provider's raw label; callers normalize it to a canonical genre.
type Suggestion struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	PageCount int    `json:"pageCount"`
	CoverURL  string `json:"coverUrl"`
}
