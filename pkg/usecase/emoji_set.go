package usecase

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

const msgEmojiNotRegistered = "this emoji is not registered in the workspace"

var msgTooManyEmoji = fmt.Sprintf("up to %d emojis can be registered", model.MaxTriggers)

// AddEmojiSubmission is the content of a submitted add modal
type AddEmojiSubmission struct {
	// Fields maps an input block id to its raw value
	Fields map[string]string
	// Shown are the stored names that were pre-filled into the modal
	Shown []types.EmojiName
}

// EmojiSet edits a workspace's trigger emoji set
type EmojiSet struct {
	repo     interfaces.Repository
	clients  interfaces.SlackClientFactory
	registry interfaces.EmojiRegistry
}

// NewEmojiSet creates a new EmojiSet
func NewEmojiSet(repo interfaces.Repository, clients interfaces.SlackClientFactory, registry interfaces.EmojiRegistry) *EmojiSet {
	return &EmojiSet{
		repo:     repo,
		clients:  clients,
		registry: registry,
	}
}

// Submit applies a submitted modal selected by its callback id.
// Unknown callback ids are acknowledged without any change.
func (x *EmojiSet) Submit(ctx context.Context, payload *model.ViewSubmitted) (*model.ActionResult, error) {
	teamID := payload.TeamID

	switch payload.View.CallbackID {
	case model.CallbackAddEmoji, model.CallbackEditEmojiSet:
		meta, err := model.ParseAddModalMetadata(payload.View.PrivateMetadata)
		if err != nil {
			return nil, err
		}

		fields := make(map[string]string, len(payload.View.Fields))
		for id, field := range payload.View.Fields {
			fields[id] = field.Value
		}
		return x.Add(ctx, teamID, AddEmojiSubmission{Fields: fields, Shown: meta.Shown})

	case model.CallbackRemoveEmoji:
		var names []types.EmojiName
		for _, v := range payload.View.Fields[model.BlockEmojiList].Selected {
			if name := types.ParseEmojiName(v); name != "" {
				names = append(names, name)
			}
		}
		return nil, x.Remove(ctx, teamID, names)

	default:
		ctxlog.From(ctx).Debug("Unknown view submission", "callback_id", payload.View.CallbackID)
		return nil, nil
	}
}

// Add validates the submitted names and merges them into the stored set.
// On a validation failure the stored set is left untouched and the errors are returned keyed by field id.
func (x *EmojiSet) Add(ctx context.Context, teamID types.TeamID, sub AddEmojiSubmission) (*model.ActionResult, error) {
	cfg, err := lookupTenant(ctx, x.repo, teamID)
	if err != nil {
		return nil, err
	}

	fieldIDs := slices.Sorted(maps.Keys(sub.Fields))
	submitted := make(map[string]types.EmojiName, len(sub.Fields))
	for _, id := range fieldIDs {
		if name := types.ParseEmojiName(sub.Fields[id]); name != "" {
			submitted[id] = name
		}
	}

	if errs, err := x.validate(ctx, cfg, submitted); err != nil {
		return nil, err
	} else if len(errs) > 0 {
		return model.NewValidationErrors(errs), nil
	}

	kept := cfg.Triggers.Remove(sub.Shown...)
	result := kept.Union(slices.Collect(maps.Values(submitted))...)

	if result.Len() > model.MaxTriggers {
		target := model.EmojiFieldID(0)
		for _, id := range fieldIDs {
			if name, ok := submitted[id]; ok && !kept.Contains(name) {
				target = id
				break
			}
		}
		ctxlog.From(ctx).Info("Trigger emoji limit exceeded",
			"team_id", teamID,
			"size", result.Len(),
		)
		return model.NewValidationErrors(map[string]string{target: msgTooManyEmoji}), nil
	}

	cfg.Triggers = result
	if err := x.repo.PutTenantConfig(ctx, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to save trigger emoji", goerr.V("team_id", teamID))
	}

	ctxlog.From(ctx).Info("Trigger emoji updated",
		"team_id", teamID,
		"triggers", cfg.Triggers.Strings(),
	)
	return nil, nil
}

// validate checks every submitted name against the workspace's custom emoji and the standard table
func (x *EmojiSet) validate(ctx context.Context, cfg *model.TenantConfig, submitted map[string]types.EmojiName) (map[string]string, error) {
	if len(submitted) == 0 {
		return nil, nil
	}

	custom, err := x.clients(cfg.AccessToken).GetEmoji(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workspace emoji", goerr.V("team_id", cfg.TeamID))
	}

	errs := make(map[string]string)
	for id, name := range submitted {
		if _, ok := custom[name.String()]; ok {
			continue
		}
		if x.registry.IsStandard(name) {
			continue
		}
		errs[id] = msgEmojiNotRegistered
	}
	return errs, nil
}

// Remove drops the given names from the stored set. Names that are not stored are ignored.
func (x *EmojiSet) Remove(ctx context.Context, teamID types.TeamID, names []types.EmojiName) error {
	cfg, err := lookupTenant(ctx, x.repo, teamID)
	if err != nil {
		return err
	}

	cfg.Triggers = cfg.Triggers.Remove(names...)
	if err := x.repo.PutTenantConfig(ctx, cfg); err != nil {
		return goerr.Wrap(err, "failed to save trigger emoji", goerr.V("team_id", teamID))
	}

	ctxlog.From(ctx).Info("Trigger emoji removed",
		"team_id", teamID,
		"removed", names,
		"triggers", cfg.Triggers.Strings(),
	)
	return nil
}
