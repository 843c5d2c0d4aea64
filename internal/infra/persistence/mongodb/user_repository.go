package mongodb

import (
	"context"
	"time"

	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/errors"
	"tube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface on the 'users' collection.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UsersCollection),
		now:  time.Now,
	}
}

// FindByID retrieves a single user by id. Malformed ids cannot exist and
// report repository.ErrUserNotFound.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// FindByUsernameOrEmail retrieves the user whose username or email matches.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	var or bson.A
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.D{{Key: "$or", Value: or}})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create inserts a new user document. Unique index violations on username or
// email surface as ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	now := repo.now().UTC()
	userM.ID = primitive.NewObjectID()
	userM.CreatedAt = now
	userM.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, userM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.Hex()
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

// Update sets the non-nil fields of update and returns the document after the write.
func (repo *userRepository) Update(ctx context.Context, id string, update *entity.UserUpdate) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	set := bson.D{{Key: "updatedAt", Value: repo.now().UTC()}}
	if update != nil {
		set = appendIfSet(set, "fullname", update.FullName)
		set = appendIfSet(set, "email", update.Email)
		set = appendIfSet(set, "avatar", update.Avatar)
		set = appendIfSet(set, "coverImage", update.CoverImage)
		set = appendIfSet(set, "password", update.PasswordHash)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var userM model.UserModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return toUserDomain(&userM), nil
}

// SetRefreshToken writes only the refresh token field.
func (repo *userRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return repo.updateOne(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "refreshToken", Value: token},
			{Key: "updatedAt", Value: repo.now().UTC()},
		}},
	}, "failed to store refresh token")
}

// ClearRefreshToken removes the refresh token field from the document.
func (repo *userRepository) ClearRefreshToken(ctx context.Context, id string) error {
	return repo.updateOne(ctx, id, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: repo.now().UTC()}}},
	}, "failed to clear refresh token")
}

func (repo *userRepository) updateOne(ctx context.Context, id string, update bson.D, failure string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	res, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, failure)
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func appendIfSet(set bson.D, key string, value *string) bson.D {
	if value == nil {
		return set
	}

	return append(set, bson.E{Key: key, Value: *value})
}
