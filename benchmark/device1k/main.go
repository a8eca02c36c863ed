package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"
var operatorToken string = "bench-token"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type fleetDevice struct {
	deviceID string
	apiKey   string
	roomID   uint
}

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

	fleet := make([]fleetDevice, maxDevices)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			fleet[i] = provisionRoomAndDevice()
			fmt.Printf("\rprovisioned room and device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rprovisioned %v rooms with devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(fleet[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func operatorPost(method, path string, payload any) map[string]any {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-Token", operatorToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		panic(fmt.Sprintf("%s %s: status %v", method, path, resp.StatusCode))
	}

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return body
}

func provisionRoomAndDevice() fleetDevice {
	room := operatorPost(http.MethodPost, "/admin/rooms", map[string]any{
		"name":     "room-" + uuid.NewString(),
		"location": "building-a",
		"capacity": 20 + int(rnd.Int31n(80)),
	})
	roomID := uint(room["ID"].(float64))

	device := fleetDevice{
		deviceID: uuid.NewString(),
		apiKey:   uuid.NewString(),
		roomID:   roomID,
	}
	operatorPost(http.MethodPost, "/admin/devices", map[string]any{
		"device_id": device.deviceID,
		"name":      "esp-" + device.deviceID[:8],
		"api_key":   device.apiKey,
	})
	operatorPost(http.MethodPut, fmt.Sprintf("/admin/rooms/%d/device", roomID), map[string]any{
		"device_id": device.deviceID,
	})

	return device
}

func doAction(device fleetDevice) {
	actions := []func(){
		genPostStatusAction(device),
		genPostHeartbeatAction(device),
		genGetRoomStatusAction(device),
	}
	actionNames := []string{
		"PostStatus",
		"PostHeartbeat",
		"GetRoomStatus",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], device.deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostStatusAction(device fleetDevice) func() {
	return func() {
		occupied := flipCoin()
		idle := int(rnd.Int31n(600))
		if occupied {
			idle = int(rnd.Int31n(60))
		}
		payload := map[string]any{
			"occupied":              occupied,
			"movement_idle_seconds": idle,
			"temperature":           rndFloat64(18.0, 30.0, 2),
			"power_on":              flipCoin(),
		}

		jsonData, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost,
			fmt.Sprintf("http://%s/devices/%s/status", httpHostPort, device.deviceID),
			bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", device.apiKey)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genPostHeartbeatAction(device fleetDevice) func() {
	return func() {
		payload := map[string]any{
			"firmware_version": "1.0.0",
		}

		jsonData, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost,
			fmt.Sprintf("http://%s/devices/%s/heartbeat", httpHostPort, device.deviceID),
			bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", device.apiKey)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetRoomStatusAction(device fleetDevice) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/rooms/%d/status", httpHostPort, device.roomID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
