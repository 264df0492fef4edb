package attribution

import (
	"afftrack/internal/models"

	"gorm.io/datatypes"
)

// NewClick builds a click bound to link. Beyond requiring the link it never
// fails: every inbound visit is worth recording, however sparse its metadata.
func NewClick(link *models.Link, ip, userAgent, visitorID string, subIDs map[string]interface{}) (*models.Click, error) {
	if link == nil || link.ID == 0 {
		return nil, missingFieldErr("link")
	}
	click := &models.Click{
		LinkID:    link.ID,
		IPAddress: ip,
		UserAgent: userAgent,
		VisitorID: visitorID,
	}
	if len(subIDs) > 0 {
		click.SubIDs = datatypes.JSONMap(subIDs)
	}
	return click, nil
}
