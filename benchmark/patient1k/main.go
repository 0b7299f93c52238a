package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxPatients int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	patientIDs := make([]string, maxPatients)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxPatients; i++ {
		i := i
		wg.Add(1)
		go func() {
			patientIDs[i] = registerPatient()
			fmt.Printf("\rregistered patient %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v patients: used time=%v seconds, throughput=%v action/second\n",
		maxPatients, usedTime.Seconds(), float64(maxPatients)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxPatients; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(patientIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v patients: used time=%v seconds, throughput=%v action/second\n",
		maxPatients, usedTime.Seconds(), float64(maxPatients*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerPatient() string {
	payload := map[string]string{
		"firstName":           "Bench",
		"lastName":            fmt.Sprintf("Patient-%s", uuid.NewString()[:8]),
		"medicalRecordNumber": uuid.NewString(),
		"dateOfBirth":         time.Date(1960+rnd.Intn(50), time.Month(1+rnd.Intn(12)), 1+rnd.Intn(28), 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		"careCenterId":        fmt.Sprintf("center-%02d", rnd.Intn(10)),
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/patients", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var patient struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &patient); err != nil || patient.ID == "" {
		panic(fmt.Sprintf("register patient failed: status=%v body=%s", resp.StatusCode, body))
	}
	return patient.ID
}

func doAction(patientID string) {
	actions := []func(){
		genPostReadingAction(patientID),
		genGetAlertsAction(patientID),
		genGetAttentionAction(),
	}
	actionNames := []string{
		"PostReading",
		"GetAlerts",
		"GetAttention",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for patient %v", actionNames[index], patientID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(patientID string) func() {
	return func() {
		payload := map[string]any{
			"recordedBy":       "bench-bot",
			"temperature":      rndFloat64(35.0, 40.5, 1),
			"systolic":         rndFloat64(80, 190, 0),
			"diastolic":        rndFloat64(50, 115, 0),
			"heartRate":        rndFloat64(45, 160, 0),
			"respiratoryRate":  rndFloat64(10, 32, 0),
			"oxygenSaturation": rndFloat64(85, 100, 0),
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/patients/%s/readings", httpHostPort, patientID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genGetAlertsAction(patientID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/patients/%s/alerts", httpHostPort, patientID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

func genGetAttentionAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/attention", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}
