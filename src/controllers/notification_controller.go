package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/keshavagr273/ClassMate/src/lib"
	"github.com/keshavagr273/ClassMate/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUserNotifications returns the authenticated user's notifications,
// newest first.
func GetUserNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	collection := lib.Mongo.Collection("notifications")
	filter := bson.M{"recipient": user.ID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := collection.Find(c.Context(), filter, opts)
	if err != nil {
		slog.Error("finding notifications", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	defer cursor.Close(c.Context())

	notifications := make([]models.Notification, 0)
	if err := cursor.All(c.Context(), &notifications); err != nil {
		slog.Error("decoding notifications", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// MarkNotificationAsRead marks a notification as read for the authenticated user.
func MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID format",
		})
	}

	user := c.Locals("user").(models.User)

	// Only notifications owned by the authenticated user can be updated.
	filter := bson.M{
		"_id":       notificationID,
		"recipient": user.ID,
	}
	update := bson.M{
		"$set": bson.M{
			"read":      true,
			"updatedAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	collection := lib.Mongo.Collection("notifications")
	var updatedNotification models.Notification
	err = collection.FindOneAndUpdate(c.Context(), filter, update, opts).Decode(&updatedNotification)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found or you don't have permission to update it",
			})
		}
		slog.Error("marking notification as read", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(updatedNotification)
}

// DeleteNotification deletes a notification for the authenticated user.
func DeleteNotification(c *fiber.Ctx) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID format",
		})
	}

	user := c.Locals("user").(models.User)

	filter := bson.M{
		"_id":       notificationID,
		"recipient": user.ID,
	}

	collection := lib.Mongo.Collection("notifications")
	result, err := collection.DeleteOne(c.Context(), filter)
	if err != nil {
		slog.Error("deleting notification", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Notification not found or you don't have permission to delete it",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification deleted successfully",
	})
}
