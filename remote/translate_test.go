package remote

import (
	"net/http"
	"testing"
)

func Test_duplicateState(t *testing.T) {
	tests := []struct {
		message string
		liked   bool
		ok      bool
	}{
		{"Post already liked", true, true},
		{"ALREADY LIKED", true, true},
		{"Like already removed", false, true},
		{"Post already unliked", false, true},
		{"Post is not liked", false, true},
		{"Like added", false, false},
		{"Like removed", false, false},
		{"", false, false},
		{"internal server error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			liked, ok := duplicateState(tt.message)
			if liked != tt.liked || ok != tt.ok {
				t.Errorf("duplicateState(%q) = %v, %v; want %v, %v",
					tt.message, liked, ok, tt.liked, tt.ok)
			}
		})
	}
}

func Test_translateLikeResponse(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLiked bool
		wantCount int
		wantKind  Kind
		wantErr   bool
	}{
		{
			name:      "plain success",
			status:    http.StatusOK,
			body:      `{"liked": true, "likesCount": 3, "message": "Like added"}`,
			wantLiked: true,
			wantCount: 3,
		},
		{
			name:      "duplicate on error status",
			status:    http.StatusBadRequest,
			body:      `{"liked": false, "likesCount": 9, "message": "Post already liked"}`,
			wantLiked: true,
			wantCount: 9,
			wantKind:  KindDuplicateAction,
			wantErr:   true,
		},
		{
			name:      "duplicate on success status",
			status:    http.StatusOK,
			body:      `{"liked": true, "likesCount": 9, "message": "Post already liked"}`,
			wantLiked: true,
			wantCount: 9,
			wantKind:  KindDuplicateAction,
			wantErr:   true,
		},
		{
			name:     "real failure",
			status:   http.StatusBadRequest,
			body:     `{"message": "rate limited"}`,
			wantKind: KindNetwork,
			wantErr:  true,
		},
		{
			name:     "missing item",
			status:   http.StatusNotFound,
			body:     `{"message": "post not found"}`,
			wantKind: KindNotFound,
			wantErr:  true,
		},
		{
			name:     "garbage payload",
			status:   http.StatusOK,
			body:     `<html>proxy error</html>`,
			wantKind: KindValidation,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := translateLikeResponse("toggling like of item 42", tt.status, []byte(tt.body))

			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				if kind, ok := kindOf(err); !ok || kind != tt.wantKind {
					t.Errorf("kind = %v, want %v", kind, tt.wantKind)
				}
			}

			if tt.wantKind == KindDuplicateAction || err == nil {
				if result.Liked != tt.wantLiked || result.LikesCount != tt.wantCount {
					t.Errorf("result = %+v, want liked=%v count=%d", result, tt.wantLiked, tt.wantCount)
				}
			}
		})
	}
}
