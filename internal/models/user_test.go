package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserBeforeSave_DerivesAge(t *testing.T) {
	dob := time.Now().AddDate(-34, 0, -1)
	u := &User{DateOfBirth: dob, Age: 999}

	require.NoError(t, u.BeforeSave(nil))
	require.Equal(t, 34, u.Age)
}

func TestUserBeforeSave_ZeroDOBLeftAlone(t *testing.T) {
	u := &User{}
	require.NoError(t, u.BeforeSave(nil))
	require.Equal(t, 0, u.Age)
}
