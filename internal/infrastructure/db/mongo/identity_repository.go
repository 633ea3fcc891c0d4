package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hellostack/portal/internal/core/domain"
)

const (
	identityCollection = "identities"
	accountCollection  = "accounts"
)

// IdentityRepository stores identities and their provider account links.
type IdentityRepository struct {
	identities *mongo.Collection
	accounts   *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{
		identities: db.Collection(identityCollection),
		accounts:   db.Collection(accountCollection),
	}
}

type mongoIdentity struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Image       string    `bson:"image,omitempty"`
	DisplayName string    `bson:"display_name,omitempty"`
	Role        string    `bson:"role"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type mongoAccount struct {
	ID                string    `bson:"_id"`
	IdentityID        string    `bson:"identity_id"`
	Provider          string    `bson:"provider"`
	ProviderAccountID string    `bson:"provider_account_id"`
	CreatedAt         time.Time `bson:"created_at"`
}

// LinkOrCreate returns the identity linked to (provider, providerAccountID),
// creating identity and link when missing. When two first sign-ins race,
// the unique link index lets exactly one create win; the loser removes its
// identity and returns the winner's. A failed removal is reported in the
// returned error together with the insert failure.
func (r *IdentityRepository) LinkOrCreate(ctx context.Context, provider, providerAccountID string, identity *domain.Identity) (*domain.Identity, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	existing, err := r.findLinked(ctx, provider, providerAccountID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()
	doc := toMongoIdentity(identity)
	doc.ID = uuid.NewString()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if doc.Role == "" {
		doc.Role = string(domain.RoleUser)
	}

	if _, err := r.identities.InsertOne(ctx, doc); err != nil {
		return nil, false, fmt.Errorf("insert identity: %w", err)
	}

	link := mongoAccount{
		ID:                uuid.NewString(),
		IdentityID:        doc.ID,
		Provider:          provider,
		ProviderAccountID: providerAccountID,
		CreatedAt:         now,
	}
	if _, err := r.accounts.InsertOne(ctx, link); err != nil {
		if _, delErr := r.identities.DeleteOne(ctx, bson.M{"_id": doc.ID}); delErr != nil {
			return nil, false, errors.Join(
				fmt.Errorf("insert account: %w", err),
				fmt.Errorf("remove orphan identity %s: %w", doc.ID, delErr),
			)
		}
		if mongo.IsDuplicateKeyError(err) {
			existing, findErr := r.findLinked(ctx, provider, providerAccountID)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("insert account: %w", err)
	}

	created := fromMongoIdentity(doc)
	return &created, true, nil
}

// FindByID retrieves an identity by its id.
func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoIdentity
	if err := r.identities.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	identity := fromMongoIdentity(doc)
	return &identity, nil
}

// SetRole updates the role of an existing identity.
func (r *IdentityRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.identities.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": string(role), "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the link lookup and upsert rely on.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.accounts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider", Value: 1}, {Key: "provider_account_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "identity_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("account indexes: %w", err)
	}

	_, err = r.identities.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}})
	if err != nil {
		return fmt.Errorf("identity indexes: %w", err)
	}
	return nil
}

func (r *IdentityRepository) findLinked(ctx context.Context, provider, providerAccountID string) (*domain.Identity, error) {
	var link mongoAccount
	err := r.accounts.FindOne(ctx, bson.M{
		"provider":            provider,
		"provider_account_id": providerAccountID,
	}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return r.FindByID(ctx, link.IdentityID)
}

func toMongoIdentity(i *domain.Identity) mongoIdentity {
	if i == nil {
		return mongoIdentity{}
	}
	return mongoIdentity{
		Name:        i.Name,
		Email:       i.Email,
		Image:       i.Image,
		DisplayName: i.DisplayName,
		Role:        string(i.Role),
	}
}

func fromMongoIdentity(doc mongoIdentity) domain.Identity {
	return domain.Identity{
		ID:          doc.ID,
		Name:        doc.Name,
		Email:       doc.Email,
		Image:       doc.Image,
		DisplayName: doc.DisplayName,
		Role:        domain.Role(doc.Role),
		CreatedAt:   doc.CreatedAt.UTC(),
		UpdatedAt:   doc.UpdatedAt.UTC(),
	}
}
