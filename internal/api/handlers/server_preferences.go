package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/notificationpreference"
	entuser "crewpulse.io/crewpulse/ent/user"
	apperrors "crewpulse.io/crewpulse/internal/pkg/errors"
)

var digestTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// preferencesJSON is the wire shape of a user's notification preferences.
// Pointers in the update path distinguish "absent" from "false".
type preferencesJSON struct {
	EmailOnTaskAssigned  bool `json:"emailOnTaskAssigned"`
	EmailOnTaskCompleted bool `json:"emailOnTaskCompleted"`
	EmailOnTaskComment   bool `json:"emailOnTaskComment"`
	EmailOnMention       bool `json:"emailOnMention"`
	EmailOnDeadline      bool `json:"emailOnDeadline"`
	EmailOnShiftAssigned bool `json:"emailOnShiftAssigned"`
	EmailOnShiftSwap     bool `json:"emailOnShiftSwap"`
	EmailOnTimeOff       bool `json:"emailOnTimeOff"`
	EmailOnMessage       bool `json:"emailOnMessage"`

	PushEnabled        bool `json:"pushEnabled"`
	PushOnTaskAssigned bool `json:"pushOnTaskAssigned"`
	PushOnTaskComment  bool `json:"pushOnTaskComment"`
	PushOnMention      bool `json:"pushOnMention"`
	PushOnMessage      bool `json:"pushOnMessage"`
	PushOnShiftSwap    bool `json:"pushOnShiftSwap"`
	PushOnTimeOff      bool `json:"pushOnTimeOff"`

	DailyDigest      bool   `json:"dailyDigest"`
	WeeklyDigest     bool   `json:"weeklyDigest"`
	MonthlyDigest    bool   `json:"monthlyDigest"`
	DigestTime       string `json:"digestTime"`
	DigestDayOfWeek  int    `json:"digestDayOfWeek"`
	DigestDayOfMonth int    `json:"digestDayOfMonth"`
}

func preferencesToAPI(p *ent.NotificationPreference) preferencesJSON {
	return preferencesJSON{
		EmailOnTaskAssigned:  p.EmailOnTaskAssigned,
		EmailOnTaskCompleted: p.EmailOnTaskCompleted,
		EmailOnTaskComment:   p.EmailOnTaskComment,
		EmailOnMention:       p.EmailOnMention,
		EmailOnDeadline:      p.EmailOnDeadline,
		EmailOnShiftAssigned: p.EmailOnShiftAssigned,
		EmailOnShiftSwap:     p.EmailOnShiftSwap,
		EmailOnTimeOff:       p.EmailOnTimeOff,
		EmailOnMessage:       p.EmailOnMessage,
		PushEnabled:          p.PushEnabled,
		PushOnTaskAssigned:   p.PushOnTaskAssigned,
		PushOnTaskComment:    p.PushOnTaskComment,
		PushOnMention:        p.PushOnMention,
		PushOnMessage:        p.PushOnMessage,
		PushOnShiftSwap:      p.PushOnShiftSwap,
		PushOnTimeOff:        p.PushOnTimeOff,
		DailyDigest:          p.DailyDigest,
		WeeklyDigest:         p.WeeklyDigest,
		MonthlyDigest:        p.MonthlyDigest,
		DigestTime:           p.DigestTime,
		DigestDayOfWeek:      p.DigestDayOfWeek,
		DigestDayOfMonth:     p.DigestDayOfMonth,
	}
}

// defaultPreferencesAPI mirrors the schema defaults for users without a row.
func defaultPreferencesAPI() preferencesJSON {
	return preferencesJSON{
		EmailOnTaskAssigned:  true,
		EmailOnTaskCompleted: true,
		EmailOnTaskComment:   true,
		EmailOnMention:       true,
		EmailOnDeadline:      true,
		EmailOnShiftAssigned: true,
		EmailOnShiftSwap:     true,
		EmailOnTimeOff:       true,
		EmailOnMessage:       true,
		PushEnabled:          true,
		PushOnTaskAssigned:   true,
		PushOnTaskComment:    true,
		PushOnMention:        true,
		PushOnMessage:        true,
		PushOnShiftSwap:      true,
		PushOnTimeOff:        true,
		DigestTime:           "08:00",
		DigestDayOfWeek:      1,
		DigestDayOfMonth:     1,
	}
}

// preferencesUpdateJSON is the PUT body. Absent fields keep their current
// (or default) value.
type preferencesUpdateJSON struct {
	EmailOnTaskAssigned  *bool `json:"emailOnTaskAssigned"`
	EmailOnTaskCompleted *bool `json:"emailOnTaskCompleted"`
	EmailOnTaskComment   *bool `json:"emailOnTaskComment"`
	EmailOnMention       *bool `json:"emailOnMention"`
	EmailOnDeadline      *bool `json:"emailOnDeadline"`
	EmailOnShiftAssigned *bool `json:"emailOnShiftAssigned"`
	EmailOnShiftSwap     *bool `json:"emailOnShiftSwap"`
	EmailOnTimeOff       *bool `json:"emailOnTimeOff"`
	EmailOnMessage       *bool `json:"emailOnMessage"`

	PushEnabled        *bool `json:"pushEnabled"`
	PushOnTaskAssigned *bool `json:"pushOnTaskAssigned"`
	PushOnTaskComment  *bool `json:"pushOnTaskComment"`
	PushOnMention      *bool `json:"pushOnMention"`
	PushOnMessage      *bool `json:"pushOnMessage"`
	PushOnShiftSwap    *bool `json:"pushOnShiftSwap"`
	PushOnTimeOff      *bool `json:"pushOnTimeOff"`

	DailyDigest      *bool   `json:"dailyDigest"`
	WeeklyDigest     *bool   `json:"weeklyDigest"`
	MonthlyDigest    *bool   `json:"monthlyDigest"`
	DigestTime       *string `json:"digestTime"`
	DigestDayOfWeek  *int    `json:"digestDayOfWeek"`
	DigestDayOfMonth *int    `json:"digestDayOfMonth"`
}

// GetPreferences handles GET /preferences. Users without a stored row get
// the schema defaults; the row itself is created lazily on first update.
func (s *Server) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pref, err := s.client.NotificationPreference.Query().
		Where(notificationpreference.HasUserWith(entuser.IDEQ(userID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusOK, defaultPreferencesAPI())
			return
		}
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load preferences", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, preferencesToAPI(pref))
}

// UpdatePreferences handles PUT /preferences. The digest time must be a
// valid HH:mm string and the day-of-month is clamped to 1..28 so short
// months never skip a digest.
func (s *Server) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var body preferencesUpdateJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInvalidBody, err.Error(), http.StatusBadRequest))
		return
	}

	if body.DigestTime != nil && !digestTimeRe.MatchString(*body.DigestTime) {
		abortWithError(c, apperrors.ErrDigestTimeInvalidf(*body.DigestTime))
		return
	}
	if body.DigestDayOfWeek != nil && (*body.DigestDayOfWeek < 0 || *body.DigestDayOfWeek > 6) {
		abortWithError(c, apperrors.BadRequest(apperrors.CodeDigestPeriodInvalid, "digestDayOfWeek must be 0..6"))
		return
	}
	if body.DigestDayOfMonth != nil {
		dom := *body.DigestDayOfMonth
		if dom < 1 {
			abortWithError(c, apperrors.BadRequest(apperrors.CodeDigestPeriodInvalid, "digestDayOfMonth must be at least 1"))
			return
		}
		if dom > 28 {
			dom = 28
		}
		body.DigestDayOfMonth = &dom
	}

	pref, err := s.client.NotificationPreference.Query().
		Where(notificationpreference.HasUserWith(entuser.IDEQ(userID))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load preferences", http.StatusInternalServerError))
		return
	}

	if pref == nil {
		pref, err = s.client.NotificationPreference.Create().
			SetID(uuid.NewString()).
			SetUserID(userID).
			Save(ctx)
		if err != nil {
			abortWithError(c, apperrors.Wrap(err, apperrors.CodePreferenceWriteFail, "failed to save preferences", http.StatusInternalServerError))
			return
		}
	}

	upd := pref.Update()
	setBool := func(v *bool, set func(bool) *ent.NotificationPreferenceUpdateOne) {
		if v != nil {
			set(*v)
		}
	}
	setBool(body.EmailOnTaskAssigned, upd.SetEmailOnTaskAssigned)
	setBool(body.EmailOnTaskCompleted, upd.SetEmailOnTaskCompleted)
	setBool(body.EmailOnTaskComment, upd.SetEmailOnTaskComment)
	setBool(body.EmailOnMention, upd.SetEmailOnMention)
	setBool(body.EmailOnDeadline, upd.SetEmailOnDeadline)
	setBool(body.EmailOnShiftAssigned, upd.SetEmailOnShiftAssigned)
	setBool(body.EmailOnShiftSwap, upd.SetEmailOnShiftSwap)
	setBool(body.EmailOnTimeOff, upd.SetEmailOnTimeOff)
	setBool(body.EmailOnMessage, upd.SetEmailOnMessage)
	setBool(body.PushEnabled, upd.SetPushEnabled)
	setBool(body.PushOnTaskAssigned, upd.SetPushOnTaskAssigned)
	setBool(body.PushOnTaskComment, upd.SetPushOnTaskComment)
	setBool(body.PushOnMention, upd.SetPushOnMention)
	setBool(body.PushOnMessage, upd.SetPushOnMessage)
	setBool(body.PushOnShiftSwap, upd.SetPushOnShiftSwap)
	setBool(body.PushOnTimeOff, upd.SetPushOnTimeOff)
	setBool(body.DailyDigest, upd.SetDailyDigest)
	setBool(body.WeeklyDigest, upd.SetWeeklyDigest)
	setBool(body.MonthlyDigest, upd.SetMonthlyDigest)
	if body.DigestTime != nil {
		upd.SetDigestTime(*body.DigestTime)
	}
	if body.DigestDayOfWeek != nil {
		upd.SetDigestDayOfWeek(*body.DigestDayOfWeek)
	}
	if body.DigestDayOfMonth != nil {
		upd.SetDigestDayOfMonth(*body.DigestDayOfMonth)
	}

	saved, err := upd.Save(ctx)
	if err != nil {
		abortWithError(c, apperrors.Wrap(err, apperrors.CodePreferenceWriteFail, "failed to save preferences", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, preferencesToAPI(saved))
}
