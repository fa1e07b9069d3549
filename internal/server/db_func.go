package server

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/dgrijalva/jwt-go"
)

// CreateTables prepares the sqlite schema; cmd/server and the tests
// call it before the first request.
func CreateTables(ctx context.Context, db *sql.DB) error {
	const (
		usersTable = `
		CREATE TABLE IF NOT EXISTS users(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT UNIQUE NOT NULL,
			hashedPassword TEXT NOT NULL
		);`

		calculationsTable = `
		CREATE TABLE IF NOT EXISTS calculations(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hash INTEGER NOT NULL,
			userId INTEGER NOT NULL,
			expression TEXT,
			status TEXT,
			result TEXT,

			FOREIGN KEY (userId) REFERENCES users (id)
		);`
	)

	if _, err := db.ExecContext(ctx, usersTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, calculationsTable); err != nil {
		return err
	}
	return nil
}

func validateToken(bearerToken string) (*jwt.Token, error) {
	return jwt.Parse(bearerToken, func(t *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
}

func getUserID(bearerToken string) (int, error) {
	token, err := validateToken(bearerToken)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}

	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return 0, jwt.NewValidationError("unexpected claims", jwt.ValidationErrorClaimsInvalid)
	}
	raw, _ := claims["id"].(string)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func storeUser(db *sql.DB, login string, hashedPassword []byte) error {
	const q = `
	INSERT INTO users (login, hashedPassword) VALUES ($1, $2)
	`
	_, err := db.Exec(q, login, hashedPassword)
	return err
}

func getUser(db *sql.DB, login string) ([]byte, int, error) {
	const q = `
	SELECT hashedPassword, id FROM users WHERE login = $1
	`
	var (
		hashedPassword []byte
		id             int
	)
	if err := db.QueryRow(q, login).Scan(&hashedPassword, &id); err != nil {
		return nil, 0, err
	}
	return hashedPassword, id, nil
}

func storeCalculation(db *sql.DB, status state, userID int, expression string, hash exprHash) (int64, error) {
	const q = `
	INSERT INTO calculations (status, result, userId, expression, hash) VALUES ($1, '', $2, $3, $4)
	`
	res, err := db.Exec(q, status, userID, expression, hash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func updateCalculationState(db *sql.DB, status state, result string, id int64) error {
	const q = `
	UPDATE calculations SET status = $1, result = $2 WHERE id = $3
	`
	_, err := db.Exec(q, status, result, id)
	return err
}

func checkCalculationExists(db *sql.DB, hash exprHash, userID int) (int64, error) {
	const q = `
	SELECT id FROM calculations WHERE hash = $1 AND userId = $2
	`
	var id int64
	err := db.QueryRow(q, hash, userID).Scan(&id)
	return id, err
}

func getCalculationState(db *sql.DB, id int64, userID int) (calculationState, error) {
	const q = `
	SELECT status, result FROM calculations WHERE id = $1 AND userId = $2
	`
	var st calculationState
	if err := db.QueryRow(q, id, userID).Scan(&st.State, &st.Result); err != nil {
		return calculationState{}, err
	}
	return st, nil
}
