package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/errutil"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// notify sends message to the branch owner and the fixed recipients.
func (x *UseCase) notify(ctx context.Context, branch *model.Branch, message string) {
	n := x.cfg.Notifier
	if n == nil {
		return
	}

	users := make([]string, 0, 1+len(n.Recipients()))
	if owner := strings.TrimSpace(branch.Owner); owner != "" {
		users = append(users, owner)
	}
	users = append(users, n.Recipients()...)

	recipients := x.resolveRecipients(ctx, users, n.UserProfileField)
	if err := x.clients.ControlPlane().Notify(ctx, n.PlugName, message, recipients); err != nil {
		errutil.HandleError(ctx, "failed to notify", goerr.Wrap(err, "failed to notify",
			goerr.V("plug", n.PlugName),
			goerr.V("recipients", recipients),
		))
	}
}

// resolveRecipients maps users to the value of the profile field at fieldPath ("a.b.c").
// A user without profile is kept as is. A user whose profile lacks the field is dropped.
func (x *UseCase) resolveRecipients(ctx context.Context, users []string, fieldPath string) []string {
	path := strings.FieldsFunc(fieldPath, func(r rune) bool { return r == '.' })
	if len(path) == 0 {
		return users
	}

	var resolved []string
	for _, user := range users {
		profile, err := x.clients.ControlPlane().GetUserProfile(ctx, user)
		if err != nil {
			logging.From(ctx).Warn("Failed to get user profile", slog.Any("error", err), slog.String("user", user))
			resolved = append(resolved, user)
			continue
		}
		if len(profile) == 0 {
			resolved = append(resolved, user)
			continue
		}

		if v, ok := lookupString(profile, path); ok && v != "" {
			resolved = append(resolved, v)
		}
	}
	return resolved
}

func lookupString(obj map[string]any, path []string) (string, bool) {
	var cur any = obj
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		if cur, ok = m[key]; !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}
