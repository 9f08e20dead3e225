package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	tenantConfigsCollection = "tenant_configs"
)

// tenantConfigDoc is the stored form of model.TenantConfig. The access token is kept encrypted.
type tenantConfigDoc struct {
	TeamID         string    `firestore:"team_id"`
	EncryptedToken []byte    `firestore:"access_token"`
	Triggers       []string  `firestore:"triggers"`
	CreatedAt      time.Time `firestore:"created_at"`
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
	cipher interfaces.TokenCipher
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string, cipher interfaces.TokenCipher) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if cipher == nil {
		return nil, goerr.New("token cipher is required for firestore repository")
	}

	// Create client with database ID
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on a wrong project or missing permissions
	_, err = client.Collection(tenantConfigsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
		cipher: cipher,
	}, nil
}

// GetTenantConfig retrieves a tenant config by team ID
func (f *Firestore) GetTenantConfig(ctx context.Context, teamID types.TeamID) (*model.TenantConfig, error) {
	if teamID == "" {
		return nil, goerr.New("team ID is empty")
	}

	doc, err := f.client.Collection(tenantConfigsCollection).Doc(teamID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrTenantNotFound, "failed to get tenant config",
				goerr.V("team_id", teamID))
		}
		return nil, goerr.Wrap(err, "failed to get tenant config from firestore",
			goerr.V("team_id", teamID))
	}

	return f.decode(doc)
}

// PutTenantConfig saves a tenant config, replacing any existing document
func (f *Firestore) PutTenantConfig(ctx context.Context, cfg *model.TenantConfig) error {
	if cfg == nil {
		return goerr.New("tenant config is nil")
	}
	if cfg.TeamID == "" {
		return goerr.New("team ID is empty")
	}

	token, err := f.cipher.Encrypt(cfg.AccessToken)
	if err != nil {
		return goerr.Wrap(err, "failed to encrypt access token", goerr.V("team_id", cfg.TeamID))
	}

	doc := tenantConfigDoc{
		TeamID:         cfg.TeamID.String(),
		EncryptedToken: token,
		Triggers:       cfg.Triggers.Strings(),
		CreatedAt:      cfg.CreatedAt,
	}

	if _, err := f.client.Collection(tenantConfigsCollection).Doc(cfg.TeamID.String()).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save tenant config to firestore", goerr.V("team_id", cfg.TeamID))
	}

	return nil
}

// ListTenantConfigs lists all tenant configs ordered by team ID
func (f *Firestore) ListTenantConfigs(ctx context.Context) ([]*model.TenantConfig, error) {
	iter := f.client.Collection(tenantConfigsCollection).Documents(ctx)
	defer iter.Stop()

	var configs []*model.TenantConfig
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tenant configs")
		}

		cfg, err := f.decode(doc)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].TeamID < configs[j].TeamID
	})

	return configs, nil
}

func (f *Firestore) decode(doc *firestore.DocumentSnapshot) (*model.TenantConfig, error) {
	var stored tenantConfigDoc
	if err := doc.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to decode tenant config", goerr.V("doc_id", doc.Ref.ID))
	}

	token, err := f.cipher.Decrypt(stored.EncryptedToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decrypt access token", goerr.V("team_id", stored.TeamID))
	}

	return &model.TenantConfig{
		TeamID:      types.TeamID(stored.TeamID),
		AccessToken: token,
		Triggers:    model.TriggerSetFromStrings(stored.Triggers),
		CreatedAt:   stored.CreatedAt,
	}, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
