package filter

import "fmt"

// Service endpoints.
const (
	PathApplyFilter   = "/apply_filter"
	PathPreviewFilter = "/preview_filter"
	PathEnhanceImage  = "/enhance_image"
)

// FilterRequest is the body of /apply_filter and /preview_filter.
type FilterRequest struct {
	FilterName string `json:"filter_name"`
	FileName   string `json:"file_name"`
}

// EnhanceRequest is the body of /enhance_image.
type EnhanceRequest struct {
	FileName string `json:"file_name"`
}

// ApplyResponse is returned by /apply_filter.
type ApplyResponse struct {
	Success       bool   `json:"success"`
	FilteredImage string `json:"filtered_image,omitempty"`
	Error         string `json:"error,omitempty"`
}

// PreviewResponse is returned by /preview_filter.
type PreviewResponse struct {
	Success      bool   `json:"success"`
	PreviewImage string `json:"preview_image,omitempty"`
	Error        string `json:"error,omitempty"`
}

// EnhanceResponse is returned by /enhance_image.
type EnhanceResponse struct {
	Success       bool   `json:"success"`
	EnhancedImage string `json:"enhanced_image,omitempty"`
	Error         string `json:"error,omitempty"`
}

// RemoteError is a request the service answered with success=false.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request failed", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
