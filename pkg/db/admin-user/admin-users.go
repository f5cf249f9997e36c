package adminuser

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storelane/store-backend/pkg/admin-user/types"
)

func (dbService *AdminUserDBService) CreateAdminUser(newUser *types.AdminUser) (*types.AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if newUser.CreatedAt.IsZero() {
		newUser.CreatedAt = time.Now()
	}
	res, err := dbService.collectionAdminUsers().InsertOne(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = res.InsertedID.(primitive.ObjectID)
	return newUser, nil
}

// find account by its unique lowercase username
func (dbService *AdminUserDBService) GetAdminUserByUsername(username string) (*types.AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user types.AdminUser
	err := dbService.collectionAdminUsers().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dbService *AdminUserDBService) GetAdminUserByID(id string) (*types.AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var user types.AdminUser
	err = dbService.collectionAdminUsers().FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveAdminUser replaces the full account record, read-modify-write style.
func (dbService *AdminUserDBService) SaveAdminUser(user *types.AdminUser) (*types.AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionAdminUsers().ReplaceOne(
		ctx,
		bson.M{"_id": user.ID},
		user,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (dbService *AdminUserDBService) GetAllAdminUsers() ([]*types.AdminUser, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetProjection(bson.D{
		{Key: "password", Value: 0},
	}).SetSort(bson.D{{Key: "username", Value: 1}})

	cursor, err := dbService.collectionAdminUsers().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*types.AdminUser
	for cursor.Next(ctx) {
		var user types.AdminUser
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, nil
}

// UpdateAdminUserPermissions replaces role and permission set for an account.
func (dbService *AdminUserDBService) UpdateAdminUserPermissions(id string, role string, permissions []string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = dbService.collectionAdminUsers().UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{
			"$set": bson.M{
				"role":        role,
				"permissions": permissions,
				"updatedAt":   time.Now(),
			},
		},
	)
	return err
}

// SetAdminUserActiveState activates or deactivates an account. Deactivation
// is the only removal path, accounts are never physically deleted.
func (dbService *AdminUserDBService) SetAdminUserActiveState(id string, isActive bool) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = dbService.collectionAdminUsers().UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{
			"$set": bson.M{
				"isActive":  isActive,
				"updatedAt": time.Now(),
			},
		},
	)
	return err
}

func (dbService *AdminUserDBService) CountAdminUsers() (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionAdminUsers().CountDocuments(ctx, bson.D{})
}
