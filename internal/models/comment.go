package models

import "time"

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	TodoID    int64     `db:"todo_id" json:"todoId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Contents  string    `db:"contents" json:"contents"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"modifiedAt"`
}
