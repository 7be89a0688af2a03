package ragstack

import "encoding/json"

// GraphQL wire shapes for the content-indexing API

// Request is the GraphQL request envelope.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Response is the GraphQL response envelope.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is a single error reported by the query layer.
type GraphQLError struct {
	Message string `json:"message"`
}

// Image is a raw image record as returned by the API.
type Image struct {
	ImageID      string `json:"imageId"`
	Filename     string `json:"filename"`
	S3URI        string `json:"s3Uri"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Caption      string `json:"caption,omitempty"`
	ContentType  string `json:"contentType,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// Document is a raw document record as returned by the API.
type Document struct {
	DocumentID string `json:"documentId"`
	Filename   string `json:"filename"`
	Type       string `json:"type"`
	MediaType  string `json:"mediaType,omitempty"`
	InputS3URI string `json:"inputS3Uri"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// ImageConnection is a paginated image result.
type ImageConnection struct {
	Items     []Image `json:"items"`
	NextToken *string `json:"nextToken"`
}

// DocumentConnection is an unpaginated document result.
type DocumentConnection struct {
	Items []Document `json:"items"`
}

type listImagesData struct {
	ListImages ImageConnection `json:"listImages"`
}

type listDocumentsData struct {
	ListDocuments DocumentConnection `json:"listDocuments"`
}

type getImageData struct {
	GetImage *Image `json:"getImage"`
}
