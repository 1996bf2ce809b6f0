package tasks

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/QuickTask/QT-Backend/internal/utils"
)

// Known limitation carried over from the original application: these
// handlers scope reads and writes by the userId the request supplies, not by
// the session that authenticated it. A logged-in caller who sends someone
// else's id can touch that account's tasks. See DESIGN.md before changing.

func ListHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "user ID required"})
		return
	}

	tasks, err := ListByOwner(userID)
	if err != nil {
		log.Println("Failed to fetch tasks: ", err)
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Failed to fetch tasks from the server."})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"tasks":   tasks,
		"success": true,
		"message": "Successfully fetched tasks",
	})
}

func CreateHandler(w http.ResponseWriter, r *http.Request) {
	var task Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	if task.ID == "" || task.Name == "" || task.Priority == "" || task.Status == "" || task.UserID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "All fields are required"})
		return
	}

	if err := Insert(task); err != nil {
		if !ValidPriority(task.Priority) || !ValidStatus(task.Status) {
			utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
			return
		}
		log.Println("Failed to insert task: ", err)
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Failed to create a task in the server"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Task has been added successfully!"})
}

func UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var task Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	if err := Update(task.ID, task.Name, task.Priority, task.Status); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Println("Failed to update task: ", err)
		}
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Task not found or update failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Task updated successfully"})
}

func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "user is undefined"})
		return
	}

	var body struct {
		Option string `json:"option"`
		Task   *Task  `json:"task"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	if body.Option == "" {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "option is not defined"})
		return
	}

	if body.Option == "delete" && body.Task != nil {
		if err := DeleteOne(body.Task.ID); err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Println("Failed to delete task: ", err)
			}
			utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Task not found or deletion failed"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Task deleted successfully!"})
		return
	}

	if body.Option == "deleteAll" {
		if _, err := DeleteAll(userID); err != nil {
			log.Println("Failed to delete all tasks: ", err)
			utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Failed to delete all tasks"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "All tasks deleted successfully!"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid option provided"})
}
