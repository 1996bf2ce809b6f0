package tasks

import (
	"errors"

	"github.com/QuickTask/QT-Backend/internal/db"
)

var ErrNotFound = errors.New("task not found")

// ListByOwner returns every task for the owner. Storage promises no
// ordering; the presentation layer sorts (see internal/client).
func ListByOwner(ownerID string) ([]Task, error) {
	tasks := []Task{}
	if err := db.DB.Find(&tasks, "user_id = ?", ownerID).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func Insert(task Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	return db.DB.Create(&task).Error
}

// Update mutates name/priority/status in place. ID and owner never change.
func Update(taskID, name, priority, status string) error {
	result := db.DB.Model(&Task{}).Where("id = ?", taskID).Updates(map[string]any{
		"name":     name,
		"priority": priority,
		"status":   status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteOne(taskID string) error {
	result := db.DB.Where("id = ?", taskID).Delete(&Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every task for one owner and reports how many went.
func DeleteAll(ownerID string) (int64, error) {
	result := db.DB.Where("user_id = ?", ownerID).Delete(&Task{})
	return result.RowsAffected, result.Error
}
