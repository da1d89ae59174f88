package distract

// category pairs trigger substrings with a pool of plausible wrong
// answers for that topic. Triggers are matched case-insensitively
// against the card's question and answer text; matching biases the
// distractors toward domain near-misses instead of unrelated answers.
type category struct {
	name     string
	triggers []string
	pool     []string
}

var categories = []category{
	{
		name:     "osi-layers",
		triggers: []string{"レイヤ", "osi", "物理層", "データリンク層", "ネットワーク層", "トランスポート層", "セッション層", "プレゼンテーション層", "アプリケーション層", "第1層", "第2層", "第3層", "第4層", "第5層", "第6層", "第7層"},
		pool: []string{
			"レイヤ1（物理層）", "レイヤ2（データリンク層）", "レイヤ3（ネットワーク層）",
			"レイヤ4（トランスポート層）", "レイヤ5（セッション層）", "レイヤ6（プレゼンテーション層）",
			"レイヤ7（アプリケーション層）", "物理層", "データリンク層", "ネットワーク層",
			"トランスポート層", "セッション層", "プレゼンテーション層", "アプリケーション層",
		},
	},
	{
		name:     "protocols",
		triggers: []string{"プロトコル", "tcp", "udp", "icmp", "arp", "rarp", "dhcp", "dns", "http", "ftp", "smtp", "pop3", "imap", "ssh", "telnet", "snmp", "ospf", "rip", "bgp", "igp", "egp", "ppp", "hdlc"},
		pool: []string{
			"TCP", "UDP", "ICMP", "ARP", "RARP", "HTTP", "HTTPS",
			"FTP", "SMTP", "POP3", "IMAP", "DNS", "DHCP",
			"SSH", "Telnet", "SNMP", "OSPF", "RIP", "BGP",
			"NTP", "TFTP", "SIP", "IGMP", "PPP", "HDLC",
		},
	},
	{
		name:     "ports",
		triggers: []string{"ポート番号", "ポート", "port"},
		pool: []string{
			"HTTP:80, DNS:53, SMTP:25", "FTP:21, SSH:22, Telnet:23",
			"HTTP:80, HTTPS:443, FTP:21", "POP3:110, IMAP:143, SMTP:25",
			"SSH(22), Telnet(23), FTP(20, 21), DNS(53), DHCP(67, 68)。",
			"HTTP(80), SMTP(25), POP3(110), IMAP(143)。",
			"HTTP:443, DNS:53, SMTP:587", "FTP:20, SSH:23, Telnet:22",
			"HTTP:8080, DNS:5353, SMTP:465",
		},
	},
	{
		name:     "ip-address",
		triggers: []string{"ipアドレス", "サブネット", "ネットワークアドレス", "ブロードキャストアドレス", "プライベート", "クラスa", "クラスb", "クラスc", "cidr", "/28", "/26", "/24", "/19", "/16"},
		pool: []string{
			"192.168.0.0 ～ 192.168.255.255", "172.16.0.0 ～ 172.31.255.255",
			"10.0.0.0 ～ 10.255.255.255", "128.0.0.0 ～ 191.255.255.255",
			"0.0.0.0 ～ 127.255.255.255", "192.0.0.0 ～ 223.255.255.255",
			"255.255.255.0", "255.255.240.0", "255.255.224.0", "255.255.192.0",
			"255.255.255.128", "255.255.255.240", "255.255.255.252",
			"192.168.1.0", "192.168.1.64", "192.168.1.128", "192.168.1.192",
			"172.16.10.0", "172.16.10.16", "172.16.10.32", "172.16.10.15",
			"10.5.8.0", "10.5.8.16", "10.5.8.31", "10.5.8.32",
		},
	},
	{
		name:     "mac-address",
		triggers: []string{"macアドレス", "mac", "oui", "ベンダー"},
		pool: []string{
			"32ビット", "48ビット", "64ビット", "128ビット",
			"ベンダー（製造メーカー）固有のID。", "NIC（ネットワークインターフェースカード）固有のID。",
			"デバイスのシリアル番号。", "FF-FF-FF-FF-FF-FF",
			"00-00-00-00-00-00", "IPアドレスとの対応テーブル。",
		},
	},
	{
		name:     "domains",
		triggers: []string{"コリジョンドメイン", "ブロードキャストドメイン", "ドメイン", "分割"},
		pool: []string{
			"コリジョンドメイン", "ブロードキャストドメイン", "フェイルオーバードメイン",
			"セキュリティドメイン", "マルチキャストドメイン", "管理ドメイン",
		},
	},
	{
		name:     "network-types",
		triggers: []string{"lan", "wan", "man", "can", "pan", "イントラネット", "エクストラネット", "インターネット"},
		pool: []string{
			"LAN (Local Area Network)", "WAN (Wide Area Network)",
			"MAN (Metropolitan Area Network)", "CAN (Campus Area Network)",
			"PAN (Personal Area Network)", "SAN (Storage Area Network)",
			"イントラネット", "エクストラネット", "インターネット", "VLAN",
		},
	},
	{
		name:     "encryption",
		triggers: []string{"暗号", "公開鍵", "共通鍵", "秘密鍵", "ハッシュ", "aes", "des", "rsa"},
		pool: []string{
			"公開鍵暗号化方式", "共通鍵暗号化方式", "ハイブリッド暗号方式",
			"暗号化と復号に異なる鍵（ペア鍵）を使用し、鍵の配送・管理が容易である",
			"暗号化と復号に同じ鍵を使う方式。高速だが鍵の配送が課題。",
			"ハッシュ値（メッセージダイジェスト）", "デジタル署名",
			"処理が高速で、鍵の配送も容易である",
			"処理は遅いが、鍵の配送・管理が困難である",
			"ストリーム暗号方式", "ブロック暗号方式",
		},
	},
	{
		name:     "attacks",
		triggers: []string{"攻撃", "ddos", "dos", "侵入", "ids", "ips", "能動的", "受動的", "マルウェア"},
		pool: []string{
			"DDoS攻撃", "DoS攻撃", "フィッシング攻撃", "ブルートフォース攻撃",
			"SQLインジェクション", "クロスサイトスクリプティング", "バッファオーバーフロー",
			"能動的攻撃 (Active Attack)", "受動的攻撃 (Passive Attack)",
			"中間者攻撃 (Man-in-the-Middle)", "なりすまし攻撃",
			"IDSは検知して通知するのみ。IPSは不正アクセスを検出すると遮断等の防御も行う。",
			"IDSは検知して遮断する。IPSは通知のみ行う。",
			"IDSもIPSも検知・遮断の両方を行う。",
		},
	},
	{
		name:     "cables",
		triggers: []string{"ケーブル", "utp", "stp", "ストレート", "クロス", "cat", "カテゴリ", "ツイストペア", "光ファイバ", "100base", "1000base"},
		pool: []string{
			"ツイストペアケーブル", "光ファイバケーブル", "同軸ケーブル",
			"UTPはシールドなし、STPはシールドあり（ノイズに強い）。",
			"UTPはシールドあり、STPはシールドなし。",
			"100メートル。", "200メートル。", "50メートル。", "500メートル。",
			"Cat5(100M), Cat5e(1G), Cat6(1G), Cat6A/7(10G)。",
			"Cat5(10M), Cat5e(100M), Cat6(1G), Cat6A/7(10G)。",
			"100MHz / 100BASE-TX", "250MHz / 1000BASE-T", "500MHz / 10GBASE-T",
			"1, 2, 3, 6番ピンのみを使用する。", "4対8芯すべての線を使用し、全二重通信を行う。",
			"1, 2番ピンのみを使用する。",
		},
	},
	{
		name:     "switching",
		triggers: []string{"vlan", "スイッチ", "フラッディング", "フォワーディング", "ラーニング", "ストアアンドフォワード", "カットスルー", "macアドレステーブル"},
		pool: []string{
			"フラッディング", "フォワーディング", "フィルタリング", "ラーニング",
			"物理構成に関わらず、論理的にネットワーク（ブロードキャストドメイン）を分割すること。",
			"物理的な配線を変えずにブロードキャストドメインを分割する",
			"物理的な配線を変えずにコリジョンドメインを分割する",
			"論理的にMACアドレステーブルを分割する",
			"ストアアンドフォワード(FCSチェックあり・確実), カットスルー(FCSなし・高速)。",
			"カットスルー(FCSチェックあり・確実), ストアアンドフォワード(FCSなし・高速)。",
		},
	},
	{
		name:     "routing",
		triggers: []string{"ルーティング", "rip", "ospf", "ホップ", "メトリック", "スプリットホライズン", "ポイズンリバース", "アドミニストレーティブ", "ad値", "igp", "egp", "bgp"},
		pool: []string{
			"ホップ数（経由するルータの数）", "帯域幅（リンクの速度）",
			"コスト（帯域幅に基づく値）", "遅延（レイテンシ）",
			"リンクステート型", "ディスタンスベクター型", "パスベクター型",
			"スプリットホライズン", "ポイズンリバース", "ルートポイズニング", "ホールドダウン",
			"直接接続 (0)", "スタティックルート (1)", "OSPF (110)", "RIP (120)",
			"15（16で到達不能とみなす）。", "30秒ごと。",
			"IGP (Interior Gateway Protocol)", "EGP (Exterior Gateway Protocol)",
			"16", "15", "32", "255",
			"サブネットマスクの通知（クラスレスルーティング対応）",
			"マルチキャスト対応", "認証機能の追加",
		},
	},
	{
		name:     "wan",
		triggers: []string{"wan", "dte", "dce", "フレームリレー", "dlci", "ppp", "ip-vpn", "nat", "napt", "pat", "onu", "ftth"},
		pool: []string{
			"フレームリレー", "ATM", "ISDN", "IP-VPN", "広域イーサネット",
			"NAT=IPのみ変換(1対1), NAPT(PAT)=IPとポート番号を変換(1対多)。",
			"NAT=IPとポート番号を変換(1対多), NAPT=IPのみ変換(1対1)。",
			"DTE=データ端末装置(ルータ等), DCE=回線終端装置(ONU/モデム等)。",
			"DTE=回線終端装置(ONU等), DCE=データ端末装置(ルータ等)。",
			"E/O変換（電気信号 ⇒ 光信号）", "O/E変換（光信号 ⇒ 電気信号）",
			"A/D変換（アナログ ⇒ デジタル）", "D/A変換（デジタル ⇒ アナログ）",
			"PAT (NAPT / IPマスカレード)", "スタティックNAT", "ダイナミックNAT",
			"ONU", "モデム", "ルータ", "TA（ターミナルアダプタ）",
			"Cisco HDLC", "PPP", "HDLC", "SLIP",
			"NCP (Network Control Protocol)", "LCP (Link Control Protocol)",
		},
	},
	{
		name:     "wireless",
		triggers: []string{"無線lan", "wifi", "ssid", "essid", "bssid", "wep", "wpa", "wpa2", "wpa3", "csma/ca", "802.11", "2.4ghz", "5ghz", "チャネル", "ローミング", "ステルス", "tkip", "aes", "隠れ端末", "電波", "周波数"},
		pool: []string{
			"ESSID (SSID)", "BSSID", "MACアドレス", "チャネルID",
			"WEP", "WPA", "WPA2", "WPA3", "IEEE 802.1X",
			"CSMA/CA with RTS/CTS", "CSMA/CD", "CSMA/CA", "トークンパッシング",
			"1, 6, 11", "1, 5, 9, 13", "1, 7, 13", "2, 7, 12",
			"5GHz帯 / 6.9Gbps", "2.4GHz帯 / 600Mbps", "5GHz帯 / 1.3Gbps", "2.4GHz帯 / 54Mbps",
			"ステルス機能", "MACアドレスフィルタリング", "ビーコン暗号化",
			"直進性が高く、障害物で反射しやすい", "回折しやすく、障害物を回り込む",
			"直進性が低く、広範囲に拡散する", "減衰が少なく、長距離伝送に適する",
		},
	},
	{
		name:     "firewall",
		triggers: []string{"dmz", "ファイアウォール", "パケットフィルタリング", "fw", "非武装地帯"},
		pool: []string{
			"DMZ (DeMilitarized Zone)", "イントラネット", "エクストラネット",
			"外部から内部へのアクセスは原則として「全て拒否」する。",
			"外部から内部へのアクセスは原則として「全て許可」する。",
			"内部から外部へのアクセスは原則として「全て拒否」する。",
			"IPアドレスやポート番号を見て通過・遮断を判断する機能。",
			"MACアドレスを見て通過・遮断を判断する機能。",
			"URLやコンテンツを見て通過・遮断を判断する機能。",
		},
	},
	{
		name:     "pdu",
		triggers: []string{"pdu", "セグメント", "データグラム", "フレーム", "パケット", "データの単位"},
		pool: []string{
			"セグメント / データグラム", "パケット", "フレーム", "ビット",
			"IPデータグラム", "セル", "メッセージ", "オクテット",
		},
	},
	{
		name:     "cast-types",
		triggers: []string{"ユニキャスト", "ブロードキャスト", "マルチキャスト", "1対1", "1対多", "通信方式"},
		pool: []string{
			"1対1の通信方式。", "1対多（ネットワーク内の全員）への通信方式。",
			"1対多（特定のグループ）への通信方式。", "多対多の通信方式。",
			"エニーキャスト（最も近い1台への通信）",
		},
	},
	{
		name:     "dhcp",
		triggers: []string{"dhcp", "ipアドレスを自動", "リース", "discover", "offer", "request", "ack"},
		pool: []string{
			"DHCP Discover", "DHCP Offer", "DHCP Request", "DHCP Acknowledge",
			"ARP Request", "DNS Query", "ICMP Echo Request",
			"IPアドレス等を自動的に割り当てる機能。", "MACアドレスを自動的に割り当てる機能。",
		},
	},
	{
		name:     "encapsulation",
		triggers: []string{"カプセル化", "ヘッダ", "上位層", "下位層", "encapsulation"},
		pool: []string{
			"カプセル化", "非カプセル化（デカプセル化）", "フラグメンテーション",
			"セグメンテーション", "マルチプレクシング", "トンネリング",
		},
	},
	{
		name:     "congestion",
		triggers: []string{"輻輳", "ボトルネック", "混雑", "ジッタ", "qos"},
		pool: []string{
			"輻輳", "ボトルネック", "レイテンシ", "ジッタ",
			"パケットロス", "スループット低下", "バッファオーバーフロー",
			"First In First Out（先入れ先出し）の処理方式。",
			"Weighted Fair Queuing（重み付き公平キューイング）",
		},
	},
	{
		name:     "ttl",
		triggers: []string{"ttl", "time to live", "生存時間", "ループ防止"},
		pool: []string{
			"ルータを経由するたびに値を減らし、0になったらパケットを破棄してループを防ぐ",
			"パケットの優先度を決定し、QoSを制御する",
			"パケットの暗号化レベルを指定する",
			"パケットの送信元を特定し、認証を行う",
		},
	},
	{
		name:     "duplex",
		triggers: []string{"半二重", "全二重", "duplex", "オートネゴシエーション"},
		pool: []string{
			"自動的に半二重になる", "自動的に全二重になる",
			"通信が切断される", "速度のみ自動設定され、二重モードは手動設定が必要になる",
			"半二重は送受信を切り替える(ハブ等)。全二重は同時送受信可能(スイッチ等)。",
			"半二重は同時送受信可能。全二重は送受信を切り替える。",
		},
	},
	{
		name:     "commands",
		triggers: []string{"コマンド", "route print", "ping", "traceroute", "ipconfig", "nslookup", "netstat"},
		pool: []string{
			"route print", "ipconfig /all", "netstat -an", "arp -a",
			"nslookup", "tracert", "ping", "pathping",
		},
	},
	{
		name:     "hierarchy",
		triggers: []string{"アクセス層", "ディストリビューション層", "コア層", "サーバファーム", "階層設計"},
		pool: []string{
			"アクセス層", "ディストリビューション層", "コア層", "サーバファーム層",
			"エッジ層", "アグリゲーション層", "バックボーン層",
		},
	},
	{
		name:     "access-control",
		triggers: []string{"csma/cd", "csma/ca", "衝突検出", "衝突回避", "アクセス制御"},
		pool: []string{
			"CSMA/CD", "CSMA/CA", "CSMA/CA with RTS/CTS",
			"トークンパッシング", "ポーリング", "TDMA",
			"イーサネットで用いられるアクセス制御方式（搬送波感知多重アクセス/衝突検出）。",
			"無線LANで用いられる「搬送波感知多重アクセス/衝突回避」方式。",
		},
	},
	{
		name:     "handshake",
		triggers: []string{"3ウェイ", "ハンドシェイク", "syn", "ack", "接続確立"},
		pool: []string{
			"3ウェイハンドシェイク (SYN -> SYN+ACK -> ACK)",
			"2ウェイハンドシェイク (SYN -> ACK)",
			"4ウェイハンドシェイク (SYN -> SYN+ACK -> ACK -> FIN)",
			"SYN送信 → SYN+ACK受信 → ACK送信 で接続を確立する。",
			"ACK送信 → SYN受信 → SYN+ACK送信 で接続を確立する。",
		},
	},
	{
		name:     "fiber",
		triggers: []string{"光ファイバ", "コア", "クラッド", "被覆", "シングルモード", "マルチモード"},
		pool: []string{
			"中心から順に、コア、クラッド、被覆。",
			"中心から順に、クラッド、コア、被覆。",
			"中心から順に、被覆、コア、クラッド。",
			"中心から順に、コア、被覆、クラッド。",
		},
	},
}
