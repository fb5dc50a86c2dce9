package mqtt_client

import (
	"fmt"
	"log"
	"time"

	"hrv-service/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// InitClient подключается к брокеру и подписывается на топик датчиков
func InitClient(cfg config.MQTTConfig, handler mqtt.MessageHandler) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(fmt.Sprintf("%s-%d", cfg.ClientID, time.Now().Unix()))

	if cfg.Username != "" && cfg.Password != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
		log.Printf("MQTT аутентификация: пользователь %s", cfg.Username)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.OnConnect = func(c mqtt.Client) {
		topic := "medical/hrv/+/+"
		token := c.Subscribe(topic, byte(cfg.QoS), handler)
		token.Wait()
		log.Printf("Подписан на топик: %s", topic)
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Printf("MQTT соединение потеряно: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("MQTT подключение не удалось: %w", token.Error())
	}
	return client, nil
}
