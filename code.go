package main

import (
	"math/rand"
	"strconv"
)

const (
	codeMin = 100000
	codeMax = 999999
)

func GenerateRoomCode() string {
	return strconv.Itoa(codeMin + rand.Intn(codeMax-codeMin+1))
}
