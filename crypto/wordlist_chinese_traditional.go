package crypto

// chineseTraditionalWordlist is the standard BIP39 Chinese (traditional) wordlist (2048 entries, sorted lexicographically).
var chineseTraditionalWordlist = []string{
	"一", "一般", "七", "三", "上", "下", "下巴", "不",
	"且", "世", "丘", "丘陵", "丙", "並", "中", "中子",
	"中年", "中秋", "串", "丹", "主", "主人", "主管", "主角",
	"乃", "久", "之", "乎", "乏", "乒乓球", "乘", "乙",
	"九", "也", "乳", "乾旱", "亂", "了", "事", "二",
	"互", "五", "井", "些", "亞", "交", "交易", "京",
	"亮", "人", "人類", "什", "仁", "今", "介", "仍",
	"他", "仙", "代", "令", "以", "仰", "件", "任",
	"任務", "份", "企", "企業", "企鵝", "伊", "伏兵", "伯",
	"伸", "似", "但", "佈局", "位", "低", "住", "何",
	"佛寺", "作", "作家", "作業", "作者", "你", "使", "來",
	"例", "供", "依", "侵", "便", "促", "俊", "俘獲",
	"俘虜", "保", "保姆", "保安", "保潔", "保險", "信", "信號",
	"修", "倉庫", "個", "倍", "們", "倒", "候", "借",
	"值", "假", "假期", "假設", "偉", "偏見", "做", "停",
	"停戰", "健身", "側", "備", "傢俱", "傳", "傳染病", "債券",
	"傷", "傷員", "僅", "僕", "僕人", "價", "價格", "儀",
	"優", "元", "元宵", "元旦", "兄弟", "充", "充電器", "先",
	"光", "光線", "克", "免", "免疫", "兒", "兒童", "兔子",
	"入", "入學", "內", "內衣", "全", "兩", "八", "公",
	"公司", "公園", "公寓", "公平", "公式", "公路", "公車", "公雞",
	"六", "共", "兵", "其", "具", "冊", "再", "冒",
	"冬季", "冬瓜", "冰", "冰箱", "冷", "凝", "凡", "凡人",
	"凱", "出", "出口", "函", "函數", "刀", "分", "分子",
	"分析法", "切", "刑", "列", "初", "初春", "判", "別",
	"別墅", "利", "利潤", "到", "制", "制度", "刺蝟", "刻",
	"則", "前", "剎車", "剛", "剩", "剪刀", "剪輯師", "副",
	"創", "劃", "劇", "劉", "劑", "力", "力量", "功",
	"功率", "加", "加速度", "助", "努", "勇敢", "勉", "動",
	"務", "勝", "勝利", "勞", "勢", "勤奮", "包", "包圍",
	"包子", "包裝", "化", "化合物", "化妝師", "化學", "北", "匯率",
	"匹", "區", "十", "千", "升", "半", "半島", "協",
	"南", "南瓜", "占", "卡", "印", "印表機", "危", "即",
	"卷", "卻", "厚", "原", "原因", "原始人", "原子核", "原料",
	"厭惡", "厲", "去", "參", "又", "及", "友", "反",
	"反擊", "反派", "反駁", "叔", "取", "受", "受助者", "口",
	"古", "古人", "句", "句子", "另", "只", "叫", "召",
	"可", "史", "右", "司", "司機", "吃", "各", "合",
	"合夥人", "合約", "同", "同事", "同學", "名", "向", "否",
	"吧", "含", "吸", "呀", "呆", "呈", "告", "呢",
	"周", "味", "呵", "呼", "命", "和", "品", "哈",
	"員", "員工", "哥", "哨兵", "哪", "哭", "哲學", "唇",
	"唯", "唱", "商", "商店", "啊", "問", "啦", "善",
	"善良", "喉嚨", "喊", "喜", "喜鵲", "喝", "喬", "單",
	"單位", "單詞", "嗎", "嘆", "嘴巴", "器", "嚴", "嚴冬",
	"四", "回", "因", "困", "困難", "固", "固體", "國",
	"國慶", "國王", "圍", "圍巾", "圍棋", "圓", "圖", "圖案",
	"圖表", "團", "團隊", "土", "土豆", "在", "地", "地下室",
	"地球", "地理", "地鐵", "地震", "均", "坐", "坐標", "坡",
	"坦", "垂", "型", "城", "城堡", "城市", "城牆", "城門",
	"域", "執", "培", "培訓", "基", "基因", "基金", "堂",
	"堅", "堅強", "堆", "堡", "報", "報告", "報紙", "報表",
	"場", "塊", "塔", "塞", "境", "墊", "增", "增長",
	"壁", "壓", "壓強", "壞", "壤", "壩", "士", "士兵",
	"夏", "夏季", "外", "外套", "外星人", "多", "多雲", "夜",
	"夠", "夥伴", "大", "大樓", "大腿", "大臣", "大蒜", "大豆",
	"大象", "天", "天使", "太", "太陽", "夫", "夫妻", "央",
	"失", "失利", "失敗", "失衡", "奇", "奇襲", "奉", "奏",
	"奔", "套", "奧", "奪", "女", "奶", "奶牛", "她",
	"好", "如", "妖怪", "妙", "妹", "姆", "始", "姐",
	"姐妹", "委", "姿", "威", "娘", "婚", "婚禮", "媽",
	"嬰兒", "子", "子女", "孔", "孔雀", "字", "字母", "存",
	"存款", "孟", "季", "季節", "孩", "孫", "學", "學校",
	"學生", "它", "宇宙", "守", "安", "完", "宗", "宗教",
	"官", "官員", "宙", "定", "定理", "宜", "客", "客人",
	"客廳", "宣", "室", "宮殿", "宰", "害", "家", "家族",
	"家長", "容", "容易", "寄", "寄生蟲", "密", "密度", "富",
	"寒", "寒流", "察", "實", "實驗", "寧", "寨", "審",
	"寫", "寬", "寬容", "寬度", "封", "射", "射箭", "將",
	"將軍", "專", "專家", "尋", "對", "對手", "導", "導演",
	"小", "小區", "小腿", "小說", "小麥", "少", "少年", "就",
	"尺子", "尼", "尾", "局", "居", "屋", "屋頂", "屏",
	"展", "屢", "層", "屬", "山", "山脈", "岩", "峰",
	"島", "島嶼", "峽", "峽谷", "崇", "崔", "崗", "川",
	"州", "巡", "工", "工廠", "工程師", "工程師助理", "左", "差",
	"已", "巴", "市", "市場", "布", "希", "希望", "帝",
	"師", "席", "帳", "帶", "常", "帽", "帽子", "幅",
	"幫", "平", "平原", "平衡", "年", "年糕", "幹", "幻",
	"幽靈", "幾", "床", "床鋪", "序", "底", "府", "度",
	"度假", "座", "庫", "庫存", "庭", "庭院", "康", "康復",
	"廚師", "廚房", "廟宇", "廠", "廣", "廣場", "廣播", "延",
	"建", "建築", "建築師", "弄", "式", "弓箭", "引", "弗",
	"弦", "弱", "張", "強", "彈", "彌", "彎", "形",
	"形狀", "彩", "彩虹", "影", "影響", "彼", "往", "待",
	"很", "律", "律師", "後", "後視鏡", "徑", "得", "從",
	"復", "微", "微波爐", "微風", "徵", "德", "徹", "心",
	"心理", "心臟", "必", "志", "志願者", "忙", "快", "快樂",
	"快遞員", "念", "忽", "怎", "怕", "思", "急", "急性病",
	"急躁", "性", "怪", "恐", "恐懼", "恥辱", "息", "悅",
	"患者", "悲傷", "悲觀", "情", "惡", "惡棍", "想", "愁",
	"意", "愚蠢", "愛", "感", "感測器", "態", "慢", "慢性病",
	"慣", "慮", "慰", "慶", "憂", "憤怒", "憲", "懇",
	"應", "懲罰", "懶惰", "懷", "成", "成交", "成功", "成本",
	"成果", "成績", "我", "戒指", "或", "戰", "戰利品", "戰場",
	"戰役", "戰甲", "戰略", "戰船", "戰術", "戰車", "戰馬", "戲劇",
	"戶", "房", "房屋", "所", "手", "手套", "手指", "手機",
	"手腕", "手臂", "手術", "手錶", "手鐲", "手電筒", "才", "打",
	"打獵", "扔", "扣", "批", "找", "承", "技", "技術員",
	"把", "抓", "投", "投資", "投降", "抗", "抗體", "折",
	"抱", "抵", "拉", "拖", "招生", "拜", "括", "拼圖",
	"拿", "持", "指", "指揮", "指甲", "按", "按摩師", "挖",
	"振", "振幅", "捐贈者", "掃描器", "掉", "掌", "排", "排球",
	"採", "探", "接", "控", "推", "推論", "措", "提",
	"插座", "揚", "換", "握", "揮", "援軍", "損", "搜",
	"搞", "搶", "摩托車", "摸", "撤退", "播", "撲克", "擇",
	"擊", "擋", "操", "擔", "據", "擦", "擴", "擺",
	"攀", "攝像頭", "攝影", "攝影師", "支", "支出", "收", "收入",
	"收銀員", "改", "攻", "放", "政", "政治", "政策", "故",
	"效", "教", "教堂", "教師", "教練", "教育", "敢", "散",
	"散文", "敬", "整", "敵", "敵人", "敵軍", "數", "數學",
	"數據", "文", "文件夾", "文化", "文字", "文章", "斑馬", "料",
	"斜", "斤", "斯", "新", "新聞", "斷", "方", "方向盤",
	"方案", "方程", "於", "施", "旅行", "旅遊", "旋", "族",
	"族譜", "旗", "既", "日", "早", "旺", "昂", "昆",
	"明", "昏", "易", "星", "星星", "星球", "映", "春",
	"春節", "昨", "是", "時", "時尚", "晉", "晚", "晚輩",
	"晨", "普", "普通", "景", "晴", "晴天", "晶", "晶片",
	"晶體", "暗", "暴雨", "曬", "曲", "曲線", "更", "書",
	"書房", "書架", "書籍", "曹", "曾", "最", "會", "會計",
	"會議", "月", "月亮", "月餅", "有", "朋友", "服", "服務員",
	"望", "朝", "期", "期刊", "期貨", "木", "木瓜", "未",
	"未來人", "末", "本", "李", "材", "村", "杜", "束",
	"束縛", "杯", "東", "松", "松鼠", "板", "析", "林",
	"果", "枝", "架", "某", "染", "染色體", "查", "柿子",
	"校", "校友", "校長", "核", "核桃", "根", "格", "桃子",
	"框架", "案", "桌子", "桌遊", "桿", "梁", "條", "條例",
	"梨子", "械", "棉", "棋牌", "森林", "椅子", "植", "椰子",
	"楊", "業", "極", "概", "榮譽", "構", "槍", "樂",
	"樂觀", "樓梯", "標", "標本", "模", "模型", "樣", "樣本",
	"樸", "樹", "橋樑", "橙子", "機", "機器人", "機場", "機構",
	"橡皮", "橫", "檢", "檸檬", "櫻桃", "權", "權威", "次",
	"欣", "款", "歌", "歌手", "歐", "歡", "止", "正",
	"正義", "此", "步", "武", "歲", "歷", "歷史", "歸",
	"死", "殖", "殘", "段", "段落", "殺", "毀", "母",
	"母雞", "每", "毒", "比", "毛", "毛衣", "毛髮", "毫",
	"氏族", "民", "民族", "氣", "氣候", "氣體", "氧", "氧化物",
	"氫", "氯", "氯離子", "水", "水牛", "水稻", "永", "求",
	"江", "汪", "決", "汽", "汽車", "沃", "沉", "沒",
	"沙", "沙漠", "沙發", "河", "河流", "河馬", "沸點", "油",
	"油箱", "治", "治療", "沿", "況", "泉", "泊", "法",
	"法官", "法律", "法規", "泡", "波", "波動", "波長", "泥",
	"注", "洋", "洋蔥", "洗", "洗衣機", "洪水", "洲", "活",
	"派", "流", "流水線", "浙", "浩", "浪", "浮", "海",
	"海峽", "海洋", "海灣", "海豚", "浸", "消", "涉", "液",
	"液體", "涼", "淡", "深", "深度", "混", "清", "清明",
	"清潔工", "清真寺", "減", "渡", "測", "測量", "港口", "游泳",
	"湖", "湖泊", "湯圓", "源", "準", "溝", "溫", "溫度",
	"溫柔", "溶", "滅", "滑", "滑雪", "滑鼠", "滿", "演",
	"演員", "演講", "漢", "漫", "漸", "潛水", "潤", "潮",
	"澤", "澱粉", "激", "激素", "濃", "濕", "濕度", "濟",
	"瀑布", "灌", "灣", "火", "火星", "火車", "灰", "炸",
	"為", "烈", "烏", "烏龜", "烽火", "無", "然", "煙",
	"煤", "照", "熊", "熊貓", "熔點", "熟", "熱", "燃",
	"燈", "燒", "燕子", "營", "爐", "爛", "爬", "爭",
	"爭論", "父", "父母", "爾", "片", "牙齒", "牛", "牛奶",
	"牛肉", "物", "物理", "特", "特殊", "犀牛", "犯", "狀",
	"狐狸", "狗", "狹隘", "猛", "猴", "猴子", "猿猴", "獅子",
	"獎勵", "獎學金", "獨", "獲", "獵豹", "獻", "率", "玉",
	"玉米", "王", "玻", "班", "班主任", "現", "現代人", "球",
	"理", "理髮師", "瑞", "環", "瓜", "瓦", "甚", "生",
	"生日", "生物", "生薑", "產", "產品", "用", "田", "由",
	"甲", "界", "留", "畢", "畢業", "略", "番茄", "畫",
	"畫家", "異", "當", "疏", "疫苗", "疲", "病", "病人",
	"病患", "病毒", "痕", "痛", "瘦", "登山", "發", "發動機",
	"發展", "白", "白菜", "百", "的", "皇", "皇帝", "皮",
	"皮膚", "盆", "盆地", "益", "盜", "盟", "盟軍", "盡",
	"盤", "目", "目標", "直", "相", "相機", "盼", "盾",
	"盾牌", "省", "看", "真", "真理", "真菌", "眼", "眼睛",
	"眼鏡", "眾", "督", "矛", "知", "短", "矮", "石",
	"石榴", "研", "破", "硫", "硫酸", "硬", "碎", "碰",
	"碳", "碳水化合物", "碳酸", "確", "碼頭", "磁", "磁場", "磷",
	"礎", "礦", "礦物質", "示", "社", "社交媒體", "社區", "社會",
	"祖", "祖先", "神", "神仙", "神壇", "神經", "祠堂", "禍",
	"福", "私", "秋", "秋季", "科", "科學", "科學家", "移",
	"稀", "稅", "稅收", "程", "程式", "程式設計師", "種", "種族",
	"稱", "稿", "積", "穩", "穩定", "穴", "究", "空",
	"空調", "穿", "突", "突圍", "窗簾", "窮", "立", "站",
	"竟", "章", "端", "端午", "竹", "符", "第", "筆",
	"等", "答", "策", "算", "管", "節", "範", "築",
	"簡", "簡單", "簡訊", "籃球", "米", "米飯", "粉", "粒",
	"粗", "粗暴", "粽子", "精", "精靈", "糕", "糖", "糧",
	"系", "系統", "糾", "紀", "約", "紅", "紅薯", "紋理",
	"納", "純", "紙", "級", "紛", "素", "細", "細胞",
	"細菌", "紹", "終", "組", "組織", "結", "結束", "結果",
	"結構", "絕", "絕望", "給", "統", "統帥", "統計", "絲",
	"經", "經濟", "經理", "綠", "維", "維修工", "維生素", "網球",
	"網站", "網絡", "綿", "緊", "線", "編", "編者", "編輯",
	"練", "縣", "縫", "縮", "縱", "總", "總統", "繁榮",
	"織", "繞", "繪畫", "繳獲", "繼", "續", "纖維素", "缸",
	"缺", "罪", "置", "羅", "羊", "羊肉", "美", "美容師",
	"羞愧", "群", "義", "義工", "羽毛球", "習", "翻", "耀",
	"老", "老師", "老年", "老虎", "老闆", "考", "考試", "者",
	"而", "耐", "耐心", "耗", "耳朵", "耳機", "耳環", "聖人",
	"聚", "聯", "聯軍", "聰明", "聲", "聲音", "職", "職員",
	"聽", "聽眾", "肉", "肌肉", "肝", "肝臟", "股東", "股票",
	"肥", "肩", "肩膀", "育", "肺部", "胃部", "背", "背包",
	"胞", "胡", "胡椒", "胸", "胺基酸", "能", "能量", "脂",
	"脂肪酸", "脆弱", "脊椎", "脖子", "脫", "腎臟", "腦", "腰",
	"腰帶", "腳", "腳趾", "腳踝", "腸道", "膠", "膠原蛋白", "膠水",
	"膽", "膽怯", "臉", "臟", "臥室", "臨", "自", "自由",
	"自行車", "自負", "至", "致", "臺", "與", "興", "舉",
	"舊", "舌頭", "舞蹈", "航", "般", "船", "艙", "良",
	"色", "芒果", "芝麻", "花", "花園", "花生", "花藝師", "芳",
	"芹菜", "芽", "苗", "若", "苦", "英", "英雄", "茄子",
	"茶", "茶藝師", "草", "草原", "草莓", "荒", "荷", "莊",
	"菌", "菜", "菠菜", "菠蘿", "華", "萌", "萬", "落",
	"葉", "著", "葛", "葡萄", "葡萄糖", "董事", "葬禮", "蒂",
	"蒙", "蒸", "蓋", "蕩", "蕭條", "薄", "薪", "藍",
	"藏", "藝", "藝術", "藥", "藥物", "蘇", "蘋果", "蘑菇",
	"蘭", "蘿蔔", "處", "虛偽", "號", "虧", "蛇類", "蛋",
	"蛋白質", "蜂蜜", "蜜蜂", "蜻蜓", "蝴蝶", "螞蟻", "蟲", "血",
	"血管", "行", "術", "街道", "衛", "衛生間", "衝", "衝浪",
	"衡", "衣", "衣服", "衣櫃", "表", "衰", "衰退", "袁",
	"袋", "袋鼠", "被", "裁", "裁判", "裂", "裕", "裙子",
	"補", "裝", "裝置", "裡", "製片人", "複雜", "褲子", "襪子",
	"襯衫", "西", "西瓜", "要", "見", "規", "規則", "視",
	"親", "親戚", "覺", "觀", "觀察員", "觀測", "觀眾", "角",
	"解", "觸", "言", "訂書機", "計", "計劃", "計算", "討",
	"討論", "訓", "記", "記者", "訪", "設", "設備", "設計",
	"設計師", "許", "訴", "診斷", "評", "試", "詩", "詩人",
	"詩歌", "話", "該", "認", "語", "語言", "誠實", "誤",
	"說", "誰", "課", "課本", "誼", "調", "調酒師", "談",
	"談判", "請", "論", "論壇", "諮詢", "諾", "謀", "謂",
	"謊言", "謙虛", "講", "講座", "謝", "證", "證券", "證明",
	"識", "警察", "譯者", "議", "護", "護士", "讀", "讀者",
	"變", "變化", "讓", "豆角", "豐", "象", "象棋", "豬肉",
	"豹子", "貓", "負", "財", "貢", "貧", "貨", "貨幣",
	"責", "貴", "買", "貸款", "費", "貿易", "資", "賓館",
	"賞", "賠", "賠款", "賣", "質", "質子", "質量", "賽",
	"走", "走廊", "起", "超", "超市", "越", "趕", "趙",
	"足", "足球", "跑", "跑步", "距", "跟", "跡", "跨",
	"路", "路人", "路由器", "跳", "踐", "蹤", "身", "躺",
	"車", "車燈", "車窗", "車站", "車間", "軍", "軍旗", "軍營",
	"軍號", "軟體", "軸", "較", "載", "輔導", "輕", "輕症",
	"輩", "輪", "輪胎", "輪船", "輸", "轉", "辛", "辣",
	"辣椒", "辦", "辯論", "辱", "農", "迅", "近", "迫",
	"述", "退", "送", "送貨員", "透", "逐", "途", "這",
	"通", "速", "速度", "造", "造型師", "連", "週年", "進",
	"進口", "遇", "遊", "運", "運動", "運動員", "遍", "過",
	"過敏", "過程", "道", "道觀", "達", "遠", "適", "遷",
	"選", "遺", "還", "邊", "那", "邦", "邪惡", "部",
	"部落", "部落格", "部門", "郭", "郵件", "都", "鄉", "鄉村",
	"鄰居", "配", "配角", "酒", "酒店", "酶類", "酷暑", "酸",
	"醒", "醜", "醫", "醫生", "醫院", "重", "重症", "重要",
	"重量", "重陽", "量", "金", "釘", "針", "釣魚", "鈉離子",
	"鈣質", "鉀離子", "鉛", "鉛筆", "銀", "銀河", "銀行", "銅",
	"銷", "銷售員", "鋅元素", "鋼", "鋼筆", "錄", "錢", "錢包",
	"錯", "鍵盤", "鎮", "鐘", "鐵", "鐵質", "鐵路", "鑽",
	"長", "長度", "長矛", "長輩", "長頸鹿", "門", "閃電", "開",
	"開始", "開關", "間", "闊", "關", "關稅", "防", "阻",
	"阿", "附", "陌生人", "降", "限", "陡", "院", "除",
	"陰", "陰天", "陳", "陸", "陽", "陽台", "隊", "階",
	"際", "隧道", "隨", "險", "隸", "雅", "集", "集團",
	"雕塑", "雖", "雙", "雜", "雜誌", "雞", "雞肉", "雞蛋",
	"離", "難", "雨", "雨傘", "雪", "雲", "零", "雷",
	"雷聲", "電", "電場", "電壓", "電子", "電影", "電池", "電流",
}
