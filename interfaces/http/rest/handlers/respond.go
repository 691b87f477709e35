package handlers

import (
	"net/http"

	"github.com/Anirach/ncd-health-plus/application/ports"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/services"
	"github.com/Anirach/ncd-health-plus/pkg/common"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured
const DefaultMaxBodyBytes = 1 << 20

func respond(w http.ResponseWriter, r *http.Request, models ports.ModelProvider, status int, data interface{}, page *common.PaginationInfo) {
	meta := &common.MetaInfo{
		RequestID:  common.ExtractRequestID(r),
		Pagination: page,
	}
	if models != nil {
		meta.Model = models.Engine().Model().Name()
	}
	common.RespondWithMeta(w, status, data, meta)
}

func bodyLimit(n int64) int64 {
	if n <= 0 {
		return DefaultMaxBodyBytes
	}
	return n
}

// wantCI reads the ci query flag; anything but true/1 is false
func wantCI(r *http.Request) bool {
	switch r.URL.Query().Get("ci") {
	case "true", "1":
		return true
	}
	return false
}

// checkStrict rejects profile factors and intervention nodes that the active
// model does not contain. The engine itself treats them as neutral.
func checkStrict(models ports.ModelProvider, p vo.PatientProfile, iv services.Interventions) error {
	model := models.Engine().Model()
	if err := model.ValidateProfile(p); err != nil {
		return err
	}
	for _, id := range iv.Keys() {
		if !model.Graph().HasNode(id) {
			return pkgerrors.ErrUnknownNode.WithDetail("node", id.String())
		}
	}
	return nil
}
