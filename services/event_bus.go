package services

import (
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type eventDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _events eventDeps

func InitEventDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_events = eventDeps{db: db, rt: rt, ps: ps}
}

// EmitEvent records a notification for the owner and fans it out over the
// websocket hub and registered devices. Safe to call anywhere; every leg is
// best effort, failures are logged and never surface to the caller. The
// primary write that triggered the event must already have succeeded.
func EmitEvent(userID uint, kind, message string) {
	if _events.db == nil {
		return // not initialized (tests)
	}

	n := &models.Notification{UserID: userID, Kind: kind, Message: message, CreatedAt: time.Now()}
	if err := _events.db.Create(n).Error; err != nil {
		utils.Logger().Warnw("notification insert failed", "kind", kind, "error", err)
	}

	if _events.rt != nil {
		_events.rt.Broadcast(userID, map[string]any{
			"kind":         kind,
			"notification": n,
		})
	}
	if _events.ps != nil {
		_events.ps.PushToUser(userID, "Nutri CRM", message, map[string]string{"kind": kind})
	}
}
