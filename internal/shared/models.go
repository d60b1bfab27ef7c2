package shared

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// ApiMessage is the envelope wrapped around every API payload.
// Data is only meaningful when OK is true.
type ApiMessage[T any] struct {
	OK   bool   `json:"ok"`
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// Result is what every resource call hands back on success: the transport
// status and headers plus the decoded envelope.
type Result[T any] struct {
	StatusCode int
	Headers    http.Header
	Message    ApiMessage[T]
}

// Page is a paginated list.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

type App struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Platform    string    `json:"platform"`
	BundleID    string    `json:"bundleId"`
	Description string    `json:"description,omitempty"`
	IconURL     string    `json:"iconUrl,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Release is a versioned build of an app. Version is semver-like.
type Release struct {
	ID          string    `json:"id"`
	AppID       string    `json:"appId"`
	Version     string    `json:"version"`
	VersionCode int       `json:"versionCode"`
	Channel     string    `json:"channel,omitempty"`
	DownloadURL string    `json:"downloadUrl"`
	Changelog   string    `json:"changelog,omitempty"`
	Size        int64     `json:"size,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content"`
	Tags      []Tag     `json:"tags,omitempty"`
	AuthorID  string    `json:"authorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateCheckResult is produced per CheckUpdate call. Release is nil when
// the caller is already on the latest version.
type UpdateCheckResult struct {
	Latest  bool     `json:"latest"`
	Release *Release `json:"release,omitempty"`
}

// --- Query objects ---

// AppQuery filters the app list.
type AppQuery struct {
	Page     int    `url:"page,omitempty"`
	PageSize int    `url:"pageSize,omitempty"`
	Keyword  string `url:"keyword,omitempty"`
	Platform string `url:"platform,omitempty"`
}

// AppQueryParam identifies the app whose releases are looked up.
type AppQueryParam struct {
	AppID    string `url:"appId,omitempty"`
	BundleID string `url:"bundleId,omitempty"`
	Platform string `url:"platform,omitempty"`
	Channel  string `url:"channel,omitempty"`
}

type ArticleQuery struct {
	Page     int    `url:"page,omitempty"`
	PageSize int    `url:"pageSize,omitempty"`
	Tag      string `url:"tag,omitempty"`
	Keyword  string `url:"keyword,omitempty"`
}

// Values serializes q; url.Values.Encode sorts keys so the output is deterministic.
func (q AppQuery) Values() (url.Values, error) { return query.Values(q) }

func (q AppQueryParam) Values() (url.Values, error) { return query.Values(q) }

func (q ArticleQuery) Values() (url.Values, error) { return query.Values(q) }

// --- Payloads ---

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AppPayload struct {
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	BundleID    string `json:"bundleId"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
}

type ReleasePayload struct {
	AppID       string `json:"appId"`
	Version     string `json:"version"`
	VersionCode int    `json:"versionCode"`
	Channel     string `json:"channel,omitempty"`
	DownloadURL string `json:"downloadUrl"`
	Changelog   string `json:"changelog,omitempty"`
}

type InvitationPayload struct {
	Code string `json:"code"`
}

type ArticlePayload struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary,omitempty"`
	Content string   `json:"content"`
	TagIDs  []string `json:"tagIds,omitempty"`
}
