package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/SabbirRshuvo/Volunteer-management-server/models"
)

// Thumbnail handles upload signature requests for the image CDN the
// frontend uploads post thumbnails to
type Thumbnail struct{}

// GenerateSignatureHandler generates a signed upload signature
func (t Thumbnail) GenerateSignatureHandler(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("THUMBNAIL_UPLOAD_PRESET")
	apiSecret := os.Getenv("THUMBNAIL_API_SECRET")

	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.UploadSignatureResponse{
		Timestamp: timestamp,
		Signature: signature,
	})
}
