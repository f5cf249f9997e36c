package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storelane/store-backend/pkg/db"
)

func (dbService *CatalogDBService) CreateProduct(product *Product) (*Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := dbService.collectionProducts().InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (dbService *CatalogDBService) GetProductByID(id string) (*Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var product Product
	err = dbService.collectionProducts().FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (dbService *CatalogDBService) GetProductBySlug(slug string) (*Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var product Product
	err := dbService.collectionProducts().FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (dbService *CatalogDBService) ReplaceProduct(product *Product) (*Product, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	product.UpdatedAt = time.Now()
	_, err := dbService.collectionProducts().ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (dbService *CatalogDBService) DeleteProduct(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = dbService.collectionProducts().DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// get paginated set of products
func (dbService *CatalogDBService) GetProducts(filter bson.M, sort bson.M, page int64, limit int64) (products []Product, paginationInfo *db.PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	count, err := dbService.GetProductCount(filter)
	if err != nil {
		return products, paginationInfo, err
	}

	paginationInfo = db.PrepPaginationInfos(
		count,
		page,
		limit,
	)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find()
	opts.SetSort(sort)
	opts.SetSkip(skip)
	opts.SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionProducts().Find(ctx, filter, opts)
	if err != nil {
		return products, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &products)
	return products, paginationInfo, err
}

func (dbService *CatalogDBService) GetProductCount(filter bson.M) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionProducts().CountDocuments(ctx, filter)
}

// DecrementProductStock reduces the stock for an ordered quantity; the filter
// prevents the stock from going negative.
func (dbService *CatalogDBService) DecrementProductStock(id primitive.ObjectID, quantity int64) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionProducts().UpdateOne(
		ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": quantity}},
		bson.M{
			"$inc": bson.M{"stock": -quantity},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return ErrInsufficientStock
	}
	return nil
}
