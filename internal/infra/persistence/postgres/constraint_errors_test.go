package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{
			name:   "gorm duplicated key",
			err:    errors.Wrap(gorm.ErrDuplicatedKey, "insert"),
			unique: true,
		},
		{
			name:   "raw unique violation",
			err:    errors.New(`ERROR: duplicate key value violates unique constraint "fitness_profiles_user_id_key" (SQLSTATE 23505)`),
			unique: true,
		},
		{
			name:       "raw foreign key violation",
			err:        errors.New(`ERROR: insert or update on table "workouts" violates foreign key constraint (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "not null violation",
			err:     errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{
			name: "unrelated",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `týden 1`, escapeLike("týden 1"))
	assert.Equal(t, `100\% \_x\\`, escapeLike(`100% _x\`))
}
