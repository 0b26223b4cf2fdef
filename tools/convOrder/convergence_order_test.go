package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := `Title,NumCells,CFL,L2,Linf,MSE,Order
sine,100,0.5000,2.0e-02,4.0e-02,4.0e-04,0.0000
sine,50,0.5000,4.0e-02,8.0e-02,1.6e-03,0.0000
sine,100,0.2500,1.0e-02,1.0e-02,1.0e-04,0.0000
`
	studies, err := readCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, len(studies))
	cs := studies["sine0.5000"]
	require.NotNil(t, cs)
	assert.Equal(t, []int{50, 100}, cs.numCells)
	assert.Equal(t, 0.5, cs.CFL)
	assert.InDelta(t, 1., cs.l2Orders[1], 1.e-12)
	assert.InDelta(t, 1., cs.lInfOrders[1], 1.e-12)
	assert.Equal(t, 0., cs.l2Orders[0])

	var buf bytes.Buffer
	printStudies(&buf, studies)
	assert.Contains(t, buf.String(), "Title = sine, CFL =  0.50")
	assert.Contains(t, buf.String(), "L2 Order = 1.000")

	_, err = readCSV(strings.NewReader("Title,NumCells\nsine,many,1,1,1,1\n"))
	assert.Error(t, err)
	_, err = readCSV(strings.NewReader("Title,NumCells\nsine,10\n"))
	assert.Error(t, err)
}
