package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *CatalogDBService) CreateCategory(category *Category) (*Category, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := dbService.collectionCategories().InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (dbService *CatalogDBService) GetCategoryByID(id string) (*Category, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var category Category
	err = dbService.collectionCategories().FindOne(ctx, bson.M{"_id": objID}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (dbService *CatalogDBService) GetCategoryBySlug(slug string) (*Category, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var category Category
	err := dbService.collectionCategories().FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (dbService *CatalogDBService) GetAllCategories() (categories []Category, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := dbService.collectionCategories().Find(ctx, bson.M{}, opts)
	if err != nil {
		return categories, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &categories)
	return categories, err
}

func (dbService *CatalogDBService) ReplaceCategory(category *Category) (*Category, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	category.UpdatedAt = time.Now()
	_, err := dbService.collectionCategories().ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (dbService *CatalogDBService) DeleteCategory(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = dbService.collectionCategories().DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
